package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ZoneColor returns the style for a pacing zone. Far zones share the hue of
// their near neighbour so the board reads as three bands.
func ZoneColor(z domain.PacingZone) lipgloss.Style {
	switch z {
	case domain.ZoneFarBehind:
		return StyleRed
	case domain.ZoneBehind:
		return StyleYellow
	case domain.ZoneOnTrack:
		return StyleGreen
	case domain.ZoneAhead:
		return StyleBlue
	case domain.ZoneFarAhead:
		return StylePurple
	default:
		return StyleDim
	}
}

// ZoneLabel is the human title of a zone, e.g. "Far Behind".
func ZoneLabel(z domain.PacingZone) string {
	switch z {
	case domain.ZoneFarBehind:
		return "Far Behind"
	case domain.ZoneBehind:
		return "Behind"
	case domain.ZoneOnTrack:
		return "On Track"
	case domain.ZoneAhead:
		return "Ahead"
	case domain.ZoneFarAhead:
		return "Far Ahead"
	default:
		return z.String()
	}
}

// ZoneIndicator returns a colored zone indicator string such as "● ON TRACK".
func ZoneIndicator(z domain.PacingZone) string {
	return ZoneColor(z).Render("● " + strings.ToUpper(ZoneLabel(z)))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warnings renders data-quality warnings, one per line.
func Warnings(ws []string) string {
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, w := range ws {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}
	return b.String()
}
