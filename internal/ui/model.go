package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/zpctl/internal/zpool"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

type logMsg string

type poolRow struct {
	name     string
	health   zpool.Health
	size     uint64
	alloc    uint64
	free     uint64
	capacity uint64
}

type poolsMsg struct {
	t    time.Time
	rows []poolRow
	err  error
}

// TeaModel is the live pool dashboard: an auto-refreshing pool table on top,
// the log tail below it.
type TeaModel struct {
	width  int
	height int

	cancel   context.CancelFunc
	pools    poolProvider
	interval time.Duration

	fullWidthWithBorders int

	poolTable    table.Model
	logsViewport viewport.Model
	logs         []string

	lastErr    error
	lastUpdate time.Time

	ready bool
}

//nolint:mnd
func NewTeaModel(pools poolProvider, interval time.Duration, cancel context.CancelFunc) TeaModel {
	poolTable := table.New(
		table.WithColumns(poolColumns(80)),
		table.WithHeight(10),
		table.WithFocused(true),
	)

	logsViewport := viewport.New(80, 10)

	return TeaModel{
		pools:        pools,
		interval:     interval,
		cancel:       cancel,
		poolTable:    poolTable,
		logsViewport: logsViewport,
		logs:         make([]string, 0, 100),
	}
}

func poolColumns(width int) []table.Column {
	nameWidth := width / 4
	colWidth := (width - nameWidth) / 5

	return []table.Column{
		{Title: "Pool", Width: nameWidth},
		{Title: "Health", Width: colWidth},
		{Title: "Size", Width: colWidth},
		{Title: "Alloc", Width: colWidth},
		{Title: "Free", Width: colWidth},
		{Title: "Cap", Width: colWidth},
	}
}

func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		refreshPools(m.pools),
	)
}

// refreshPools collects the active pools and a property snapshot per pool.
// Failures are carried on the message and displayed, never fatal to the UI.
func refreshPools(pools poolProvider) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		active, err := pools.All(ctx)
		if err != nil {
			return poolsMsg{t: time.Now(), err: err}
		}

		rows := make([]poolRow, 0, len(active))
		for _, p := range active {
			row := poolRow{name: p.Name, health: p.Health}

			if props, err := pools.ReadPropertiesUnchecked(ctx, p.Name); err == nil {
				row.size = props.Size
				row.alloc = props.Alloc
				row.free = props.Free
				row.capacity = props.Capacity
			}

			rows = append(rows, row)
		}

		return poolsMsg{t: time.Now(), rows: rows}
	}
}

func scheduleRefresh(pools poolProvider, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshPools(pools)()
	})
}

//nolint:mnd,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2

		upperHeight := m.height * 2 / 5
		lowerHeight := m.height - upperHeight

		m.poolTable.SetColumns(poolColumns(m.fullWidthWithBorders))
		m.poolTable.SetHeight(upperHeight - 3)

		m.logsViewport.Width = m.fullWidthWithBorders
		m.logsViewport.Height = lowerHeight - 4

		if len(m.logs) > 0 {
			m.logsViewport.SetContent(strings.Join(m.logs, ""))
		}

		m.ready = true

	case poolsMsg:
		m.lastErr = msg.err
		m.lastUpdate = msg.t

		if msg.err == nil {
			rows := make([]table.Row, 0, len(msg.rows))
			for _, r := range msg.rows {
				rows = append(rows, table.Row{
					r.name,
					r.health.String(),
					humanize.IBytes(r.size),
					humanize.IBytes(r.alloc),
					humanize.IBytes(r.free),
					fmt.Sprintf("%d%%", r.capacity),
				})
			}
			m.poolTable.SetRows(rows)
		}

		cmds = append(cmds, scheduleRefresh(m.pools, m.interval))

	case logMsg:
		if len(m.logs) >= 100 {
			m.logs = m.logs[1:]
		}

		m.logs = append(m.logs, string(msg))

		m.logsViewport.SetContent(strings.Join(m.logs, ""))
		m.logsViewport.GotoBottom()
	}

	m.poolTable, cmd = m.poolTable.Update(msg)
	cmds = append(cmds, cmd)

	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	header := fmt.Sprintf("Active Pools (refreshed %s)", m.lastUpdate.Format(time.Kitchen))
	if m.lastErr != nil {
		header += errorStyle.Render(fmt.Sprintf(" — %v", m.lastErr))
	}

	poolSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render(header),
				m.poolTable.View(),
			),
		)

	logsSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Process Information"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("q: quit gui • ctrl+c: quit program")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		poolSection,
		logsSection,
		helpSection,
	)
}
