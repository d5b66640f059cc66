package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var sf scopeFlags
	var on dateFlag

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the live pacing board",
		Long: `Open a full-screen pacing board for one class unit. Step the date with
the arrow keys to see how the class would look on another day. Without
--unit, an interactive terminal offers a picker of scheduled units.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sf.class == "" {
				return fmt.Errorf("--class is required")
			}
			if sf.unit == 0 {
				unit, err := pickUnit(cmd, app, sf.schoolYear, sf.class)
				if err != nil {
					return err
				}
				sf.unit = unit
			}
			scope, err := sf.scope()
			if err != nil {
				return err
			}

			m := newBoardModel(app.pacingUseCase(), scope, on.or(app.today()), app.Config.MinZonePct)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	sf.register(cmd.Flags(), app)
	cmd.Flags().Var(&on, "date", "Open the board on this date (YYYY-MM-DD)")
	return cmd
}

// pickUnit resolves a missing --unit: the only scheduled unit is chosen
// directly, several are offered in a picker when stdin is a terminal.
func pickUnit(cmd *cobra.Command, app *App, schoolYear, class string) (int, error) {
	options, err := unitOptions(cmd.Context(), app, schoolYear, class)
	if err != nil {
		return 0, err
	}
	switch {
	case len(options) == 0:
		return 0, fmt.Errorf("class %s has no unit schedules in %s; run `paceboard schedule set` first", class, schoolYear)
	case len(options) == 1:
		return options[0].Value, nil
	case !app.interactive():
		return 0, fmt.Errorf("--unit is required (scheduled units: %s)", optionKeys(options))
	}

	var unit int
	if err := unitPickerForm(class, options, &unit).RunWithContext(cmd.Context()); err != nil {
		return 0, err
	}
	return unit, nil
}

func optionKeys(options []huh.Option[int]) string {
	keys := make([]string, 0, len(options))
	for _, o := range options {
		keys = append(keys, strconv.Itoa(o.Value))
	}
	return strings.Join(keys, ", ")
}
