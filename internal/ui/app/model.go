package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	datasetdto "bikeshare/internal/modules/dataset/dto"
	datasetin "bikeshare/internal/modules/dataset/port/in"
	statsdto "bikeshare/internal/modules/stats/dto"
	"bikeshare/internal/ui/components"
	"bikeshare/internal/ui/theme"
	reportview "bikeshare/internal/ui/views/report"
	"bikeshare/internal/ui/views/selection"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type statsPort interface {
	Report(ctx context.Context, city, month, day string) (statsdto.ReportOutput, error)
}

type datasetPort interface {
	OpenPager(ctx context.Context, city, month, day string) (datasetin.Pager, error)
	ListSources(ctx context.Context) ([]datasetdto.SourceOutput, error)
	Selectors() datasetdto.SelectorsOutput
}

// ─── steps ───────────────────────────────────────────────────────────────────

const (
	stepCity  = "city"
	stepMonth = "month"
	stepDay   = "day"
)

type phase int

const (
	phaseSelect phase = iota
	phaseReport
)

// ─── messages ────────────────────────────────────────────────────────────────

type sourcesLoadedMsg struct {
	sources []datasetdto.SourceOutput
	err     error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Rows    key.Binding
	Restart key.Binding
	Back    key.Binding
	Prompt  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Rows:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "next 5 raw rows")),
		Restart: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "restart")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Prompt:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "type a selection")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rows, k.Restart, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rows, k.Restart, k.Back},
		{k.Prompt, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model walks the user through city, month and day, shows the report and
// pages raw rows on request. Errors are shown in the status bar and send the
// user back to the city list.
type Model struct {
	stats   statsPort
	dataset datasetPort
	logger  hclog.Logger

	phase   phase
	chooser selection.Model
	report  reportview.Model
	prompt  components.Prompt
	sources []datasetdto.SourceOutput
	months  []datasetdto.ChoiceOutput
	days    []datasetdto.ChoiceOutput

	city  string
	month string
	day   string

	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(stats statsPort, dataset datasetPort, logger hclog.Logger) Model {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	selectors := dataset.Selectors()
	return Model{
		stats:   stats,
		dataset: dataset,
		logger:  logger.Named("tui"),
		phase:   phaseSelect,
		chooser: selection.New(stepCity, "Choose a city", nil),
		report:  reportview.New(stats, dataset),
		prompt:  components.NewPrompt(),
		months:  selectors.Months,
		days:    selectors.Days,
		keys:    defaultKeys(),
		help:    help.New(),
		status:  "loading cities…",
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadSourcesCmd()
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The prompt takes the keyboard only; loads and ticks keep flowing.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.prompt.Visible() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(keyMsg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.SetWidth(min(msg.Width-4, 72))
		m.propagateSize()
		return m, nil

	case sourcesLoadedMsg:
		if msg.err != nil {
			m.status = "list cities: " + msg.err.Error()
			return m, nil
		}
		m.sources = msg.sources
		m.restart()
		m.status = "choose a city"
		return m, nil

	case selection.ChosenMsg:
		return m.choose(msg)

	case reportview.LoadedMsg:
		if m.phase != phaseReport || msg.Seq != m.report.Seq() {
			m.logger.Debug("stale report dropped", "seq", msg.Seq, "current", m.report.Seq())
			return m, nil
		}
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(msg)
		if msg.Err != nil {
			m.logger.Warn("report failed", "city", m.city, "month", m.month, "day", m.day, "error", msg.Err)
			m.restart()
			m.status = theme.Error.Render("error: " + msg.Err.Error())
			return m, cmd
		}
		m.status = fmt.Sprintf("%s · %d trips · r: raw rows  n: restart", msg.Report.CityName, msg.Report.Trips)
		if msg.Report.Warning != nil {
			m.status = theme.Hot.Render(msg.Report.Warning.Error())
		}
		return m, cmd

	case components.PromptSubmitMsg:
		if msg.Input == "" {
			return m, nil
		}
		city, month, day := components.SplitSelection(msg.Input, accepted(m.months), accepted(m.days))
		return m.load(city, month, day)

	case components.PromptCancelMsg:
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.phase == phaseSelect && m.chooser.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Prompt):
			return m, m.prompt.Open()
		case key.Matches(msg, m.keys.Restart):
			m.restart()
			m.status = "choose a city"
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.back()
			return m, nil
		case key.Matches(msg, m.keys.Rows) && m.phase == phaseReport && !m.report.Loading():
			var more bool
			m.report, more = m.report.MoreRows()
			if !more {
				m.status = "no more raw rows · n: restart  q: quit"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.phase == phaseSelect {
		m.chooser, cmd = m.chooser.Update(msg)
	} else {
		m.report, cmd = m.report.Update(msg)
	}
	if m.prompt.Visible() {
		var promptCmd tea.Cmd
		m.prompt, promptCmd = m.prompt.Update(msg)
		return m, tea.Batch(cmd, promptCmd)
	}
	return m, cmd
}

func (m Model) choose(msg selection.ChosenMsg) (tea.Model, tea.Cmd) {
	switch msg.Step {
	case stepCity:
		m.city = msg.Option.Value
		m.chooser = m.sized(selection.New(stepMonth, "Filter by month", options(m.months)))
		m.status = "choose a month"
	case stepMonth:
		m.month = msg.Option.Value
		m.chooser = m.sized(selection.New(stepDay, "Filter by day of week", options(m.days)))
		m.status = "choose a day"
	case stepDay:
		m.day = msg.Option.Value
		return m.load(m.city, m.month, m.day)
	}
	return m, nil
}

func (m Model) load(city, month, day string) (tea.Model, tea.Cmd) {
	m.city, m.month, m.day = city, month, day
	m.phase = phaseReport
	m.status = "calculating…"
	m.logger.Debug("selection made", "city", city, "month", month, "day", day)
	var cmd tea.Cmd
	m.report, cmd = m.report.Load(city, month, day)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.prompt.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.prompt.View())
	case m.phase == phaseReport:
		content = m.report.View()
	default:
		content = m.chooser.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	parts := []string{theme.Title.Render("bikeshare")}
	for _, v := range []string{m.city, m.month, m.day} {
		if v != "" {
			parts = append(parts, theme.Hot.Render(v))
		}
	}
	bar := strings.Join(parts, theme.Muted.Render(" › "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  /:type  n:restart  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) restart() {
	m.phase = phaseSelect
	m.report = m.report.Cancel()
	m.city, m.month, m.day = "", "", ""
	opts := make([]selection.Option, 0, len(m.sources))
	for _, s := range m.sources {
		opts = append(opts, selection.Option{Value: s.City, Label: s.CityName, Hint: s.Format + "  " + s.Path})
	}
	m.chooser = m.sized(selection.New(stepCity, "Choose a city", opts))
}

func (m *Model) back() {
	switch {
	case m.phase == phaseReport:
		m.restart()
	case m.chooser.Step() == stepDay:
		m.month = ""
		m.chooser = m.sized(selection.New(stepMonth, "Filter by month", options(m.months)))
	case m.chooser.Step() == stepMonth:
		m.restart()
	}
}

func (m Model) sized(c selection.Model) selection.Model {
	c, _ = c.Update(tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()})
	return c
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()}
	m.chooser, _ = m.chooser.Update(sz)
	m.report, _ = m.report.Update(sz)
}

func (m Model) contentHeight() int {
	return max(m.height-4, 1)
}

func options(choices []datasetdto.ChoiceOutput) []selection.Option {
	out := make([]selection.Option, 0, len(choices))
	for _, c := range choices {
		out = append(out, selection.Option{Value: c.Value, Label: c.Label})
	}
	return out
}

func accepted(choices []datasetdto.ChoiceOutput) []string {
	var out []string
	for _, c := range choices {
		out = append(out, c.Accepts...)
	}
	return out
}

func (m Model) loadSourcesCmd() tea.Cmd {
	return func() tea.Msg {
		sources, err := m.dataset.ListSources(context.Background())
		return sourcesLoadedMsg{sources: sources, err: err}
	}
}
