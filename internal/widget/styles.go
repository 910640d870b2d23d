package widget

import "github.com/charmbracelet/lipgloss"

// Default theme colors
const (
	ColorAccent    = "86"  // Cyan/green - titles, expanded markers
	ColorHighlight = "205" // Magenta - focused rows
	ColorMuted     = "241" // Gray - descriptions, collapsed sections
	ColorText      = "252" // Light gray - normal rows
)

// Theme holds the style set shared by all widgets. Widgets never construct
// styles inline; the demo app builds one Theme from config and hands it to
// every widget so a color override applies everywhere.
type Theme struct {
	Title    lipgloss.Style // widget titles
	Focused  lipgloss.Style // the row owning the roving focus
	Selected lipgloss.Style // the selected/expanded row when not focused
	Normal   lipgloss.Style // all other candidate rows
	Muted    lipgloss.Style // descriptions, collapsed bodies, hints
}

// NewTheme builds a theme around an accent color (titles, selection markers)
// and a highlight color (the focused row).
func NewTheme(accent, highlight string) Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)),
		Focused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(highlight)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
	}
}

// DefaultTheme returns the stock accent/highlight pairing.
func DefaultTheme() Theme {
	return NewTheme(ColorAccent, ColorHighlight)
}
