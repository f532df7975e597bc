package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bikeshare/internal/ui/theme"
)

// PromptSubmitMsg is emitted when the user confirms a typed selection.
type PromptSubmitMsg struct{ Input string }

// PromptCancelMsg is emitted when the user presses esc.
type PromptCancelMsg struct{}

var (
	promptStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

var promptHints = []string{
	"<city> [month] [day]",
	"chicago",
	"new york city march",
	"washington all friday",
	"chicago jan fri",
}

// Prompt lets the user type a whole selection at once instead of walking
// the city, month and day lists.
type Prompt struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewPrompt() Prompt {
	ti := textinput.New()
	ti.Placeholder = "city month day…"
	ti.CharLimit = 64
	return Prompt{input: ti}
}

func (p Prompt) Visible() bool { return p.visible }

// Open shows the prompt, clears the input, and returns the focus command.
func (p *Prompt) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Prompt) SetWidth(w int) { p.width = w }

func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PromptCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PromptSubmitMsg{Input: val} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Prompt) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Explore trips") + "\n")
	sb.WriteString("> " + p.input.View() + "\n\n")
	for _, h := range promptHints {
		sb.WriteString(hintStyle.Render("  "+h) + "\n")
	}
	w := p.width
	if w < 20 {
		w = 64
	}
	return promptStyle.Width(w - 2).Render(sb.String())
}

// SplitSelection reads "<city> [month] [day]" where the city may span
// several words. months and days hold every accepted input, short forms
// included. Month and day are recognised from the end of the input; a single
// trailing word is taken as a month when it names one, else as a day.
func SplitSelection(input string, months, days []string) (city, month, day string) {
	fields := strings.Fields(strings.ToLower(input))
	n := len(fields)
	switch {
	case n > 2 && contains(months, fields[n-2]) && contains(days, fields[n-1]):
		month, day = fields[n-2], fields[n-1]
		fields = fields[:n-2]
	case n > 1 && contains(months, fields[n-1]):
		month = fields[n-1]
		fields = fields[:n-1]
	case n > 1 && contains(days, fields[n-1]):
		day = fields[n-1]
		fields = fields[:n-1]
	}
	return strings.Join(fields, " "), month, day
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
