package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/paceboard/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// paceboardHuhTheme returns a huh theme matching the Gruvbox formatter
// palette.
func paceboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// unitOptions lists the scheduled units of a class section as picker
// options.
func unitOptions(ctx context.Context, app *App, schoolYear, class string) ([]huh.Option[int], error) {
	units, err := app.Schedules.ListUnits(ctx, schoolYear, class)
	if err != nil {
		return nil, err
	}
	options := make([]huh.Option[int], 0, len(units))
	for _, u := range units {
		options = append(options, huh.NewOption(fmt.Sprintf("Unit %d", u), u))
	}
	return options, nil
}

// unitPickerForm asks which scheduled unit to open.
func unitPickerForm(class string, options []huh.Option[int], result *int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("Which unit of %s?", class)).
				Options(options...).
				Value(result),
		),
	).WithTheme(paceboardHuhTheme()).WithShowHelp(false)
}
