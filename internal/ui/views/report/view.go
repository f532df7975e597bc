package report

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	datasetin "bikeshare/internal/modules/dataset/port/in"
	statsdto "bikeshare/internal/modules/stats/dto"
	"bikeshare/internal/ui/render"
	"bikeshare/internal/ui/theme"
)

type StatsPort interface {
	Report(ctx context.Context, city, month, day string) (statsdto.ReportOutput, error)
}

type RowsPort interface {
	OpenPager(ctx context.Context, city, month, day string) (datasetin.Pager, error)
}

// LoadedMsg carries a computed report and a fresh pager over the same
// selection. Seq identifies the Load call that produced it.
type LoadedMsg struct {
	Seq    int
	Report statsdto.ReportOutput
	Pager  datasetin.Pager
	Err    error
}

// Model shows one report and the raw-row pages requested after it.
type Model struct {
	stats    StatsPort
	rows     RowsPort
	viewport viewport.Model
	spinner  spinner.Model
	pager    datasetin.Pager
	body     string
	seq      int
	loading  bool
	width    int
	height   int
}

func New(stats StatsPort, rows RowsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{stats: stats, rows: rows, viewport: viewport.New(0, 0), spinner: sp}
}

// Load computes the report for a selection. The result arrives as LoadedMsg
// carrying the sequence number returned by Seq; results of earlier loads are
// ignored.
func (m Model) Load(city, month, day string) (Model, tea.Cmd) {
	m.seq++
	m.loading = true
	m.pager = nil
	m.body = ""
	m.viewport.SetContent("")
	stats, rows, seq := m.stats, m.rows, m.seq
	load := func() tea.Msg {
		ctx := context.Background()
		out, err := stats.Report(ctx, city, month, day)
		if err != nil {
			return LoadedMsg{Seq: seq, Err: err}
		}
		pager, err := rows.OpenPager(ctx, city, month, day)
		return LoadedMsg{Seq: seq, Report: out, Pager: pager, Err: err}
	}
	return m, tea.Batch(load, m.spinner.Tick)
}

// MoreRows appends the next page of raw trips and reports whether any rows
// remain after it.
func (m Model) MoreRows() (Model, bool) {
	if m.pager == nil {
		return m, false
	}
	page := m.pager.Next()
	m.body += "\n" + render.Rows(page)
	m.viewport.SetContent(m.body)
	m.viewport.GotoBottom()
	return m, len(page.Trips) > 0 && !page.Done
}

// Cancel abandons the load in flight, if any.
func (m Model) Cancel() Model {
	m.seq++
	m.loading = false
	m.pager = nil
	m.body = ""
	m.viewport.SetContent("")
	return m
}

func (m Model) HasRows() bool { return m.pager != nil && !m.pager.Done() }

func (m Model) Loading() bool { return m.loading }

func (m Model) Seq() int { return m.seq }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		return m, nil
	case LoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			return m, nil
		}
		m.pager = msg.Pager
		m.body = render.Report(msg.Report)
		m.viewport.SetContent(m.body)
		m.viewport.GotoTop()
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Calculating statistics…")
	}
	return m.viewport.View()
}
