package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
	"github.com/MrJamesThe3rd/moneymap/internal/statistics"
)

const rebuildTimeout = 5 * time.Minute

type ledgerState int

const (
	ledgerStateTimeframe ledgerState = iota
	ledgerStateBrowse
)

type LedgerModel struct {
	CommonModel
	ledgerService *ledger.Service

	state           ledgerState
	timeframePicker TimeframePicker
	selection       TimeframeSelectedMsg

	table     table.Model
	entries   []*ledger.Entry
	reports   []statistics.Report
	showStats bool

	loading bool
	err     error
	status  string
}

func NewLedgerModel(svc *ledger.Service) LedgerModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Receiver", Width: 28},
		{Title: "Amount", Width: 14},
		{Title: "Category", Width: 22},
		{Title: "Subcategory", Width: 22},
		{Title: "Leaf", Width: 26},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return LedgerModel{
		ledgerService:   svc,
		state:           ledgerStateTimeframe,
		timeframePicker: NewTimeframePicker(TimeframeThisMonth),
		table:           t,
	}
}

func (m LedgerModel) Title() string { return "Browse Ledger" }

func (m LedgerModel) ShortHelp() string {
	if m.state == ledgerStateTimeframe {
		return "Esc: back | Enter: select"
	}

	return "Esc: back | t: timeframe | b: rebuild | r: refresh | s: statistics"
}

func (m LedgerModel) Init() tea.Cmd {
	return nil
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.selection = msg
		m.state = ledgerStateBrowse
		m.loading = true

		return m, m.loadEntriesCmd()

	case loadLedgerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.entries = msg.entries
		m.reports = statistics.Build(msg.entries, statistics.DefaultIgnored)
		m.refreshTable()

		return m, nil

	case rebuildResultMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err

			return m, nil
		}

		m.status = fmt.Sprintf("Rebuilt ledger with %d entries.", msg.count)

		return m, m.loadEntriesCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-10, 5))

		return m, nil
	}

	switch m.state {
	case ledgerStateTimeframe:
		return m.updateTimeframe(msg)
	case ledgerStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m LedgerModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m LedgerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.loading {
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "t":
			m.state = ledgerStateTimeframe
			m.timeframePicker.Reset()

			return m, nil
		case "r":
			m.loading = true
			return m, m.loadEntriesCmd()
		case "b":
			m.loading = true
			m.status = "Rebuilding ledger..."

			return m, m.rebuildCmd()
		case "s":
			m.showStats = !m.showStats
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m LedgerModel) View() string {
	if m.state == ledgerStateTimeframe {
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())
	}

	if m.loading {
		msg := "Loading ledger..."
		if m.status != "" {
			msg = m.status
		}

		return lipgloss.NewStyle().Padding(2).Render(msg)
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf("Timeframe: %s | %d entries", accentStyle.Render(m.selection.Label()), len(m.entries))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.showStats {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(renderTotals(m.reports))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n" + faintStyle.Render(m.ShortHelp()))
}

// renderTotals lists the monthly net amount of every account.
func renderTotals(reports []statistics.Report) string {
	if len(reports) == 0 {
		return "No statistics"
	}

	var sb strings.Builder

	sb.WriteString("Monthly totals\n")

	for _, r := range reports {
		sb.WriteString("\n" + accentStyle.Render(r.Account) + "\n")

		for _, t := range r.Totals {
			sb.WriteString(fmt.Sprintf("  %s  %10d\n", t.YearMonth, t.Amount))
		}
	}

	return sb.String()
}

func (m *LedgerModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		tx := e.Transaction
		rows = append(rows, table.Row{
			FormatDate(tx.BookingDate),
			tx.ReceiverName,
			FormatAmount(tx.Amount, tx.Currency),
			e.Category.Level1,
			e.Category.Level2,
			e.Category.Level3,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadLedgerMsg struct {
	entries []*ledger.Entry
	err     error
}

type rebuildResultMsg struct {
	count int
	err   error
}

func (m LedgerModel) loadEntriesCmd() tea.Cmd {
	filter := m.selection.Filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := m.ledgerService.List(ctx, filter)

		return loadLedgerMsg{entries: entries, err: err}
	}
}

func (m LedgerModel) rebuildCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rebuildTimeout)
		defer cancel()

		n, err := m.ledgerService.Rebuild(ctx)

		return rebuildResultMsg{count: n, err: err}
	}
}
