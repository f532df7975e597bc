package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	Title   = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Section = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
	Label   = lipgloss.NewStyle().Foreground(Subtext0)
	Value   = lipgloss.NewStyle().Foreground(Green)
	Muted   = lipgloss.NewStyle().Foreground(Subtext0).Italic(true)
	Hot     = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Error   = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Rule    = lipgloss.NewStyle().Foreground(Surface1)
)
