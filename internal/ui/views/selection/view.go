package selection

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bikeshare/internal/ui/theme"
)

// Option is one choice on a selection screen.
type Option struct {
	Value string
	Label string
	Hint  string
}

// ChosenMsg is emitted when the user confirms an option.
type ChosenMsg struct {
	Step   string
	Option Option
}

type optionItem struct{ option Option }

func (i optionItem) Title() string       { return i.option.Label }
func (i optionItem) Description() string { return i.option.Hint }
func (i optionItem) FilterValue() string { return i.option.Label }

// Model is a filterable list for one step of the city → month → day prompt.
type Model struct {
	step   string
	list   list.Model
	width  int
	height int
}

func New(step, title string, options []Option) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = optionItem{option: o}
	}
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return Model{step: step, list: l}
}

func (m Model) Step() string { return m.step }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "enter" && m.list.FilterState() != list.Filtering {
			item, ok := m.list.SelectedItem().(optionItem)
			if !ok {
				return m, nil
			}
			step := m.step
			return m, func() tea.Msg { return ChosenMsg{Step: step, Option: item.option} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(m.list.View())
}

// Filtering reports whether a search filter is being typed or applied, in
// which case global key bindings must yield so esc can clear it.
func (m Model) Filtering() bool {
	return m.list.FilterState() != list.Unfiltered
}
