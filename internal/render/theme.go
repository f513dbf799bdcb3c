package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles used when rendering resolved arrangements.
type Theme struct {
	Name    string
	Header  lipgloss.Style
	Primary lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Marker  string // marks default styles in listings
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Marker:  "●",
	}
}

// MonoTheme returns a colorless theme for non-TTY and --no-color output.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Header:  lipgloss.NewStyle(),
		Primary: lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Marker:  "*",
	}
}
