package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/moneymap/internal/importer"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateParsing
	importStatePreview
	importStateIngesting
	importStateResult
)

type ImportModel struct {
	CommonModel
	txService     *transaction.Service
	importService *importer.Service

	state      importState
	filePicker filepicker.Model

	filename    string
	parsed      []*transaction.Raw
	previewList list.Model

	status string
	err    error
}

func NewImportModel(txSvc *transaction.Service, impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{string(importer.FormatRBPN)}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		txService:     txSvc,
		importService: impSvc,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string { return "Import Statement" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStatePreview {
		return "Enter: store new rows | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStatePreview {
			return m.updatePreview(msg)
		}

	case parseResultMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = describeImportError(msg.err)

			return m, nil
		}

		m.parsed = msg.txs
		m.state = importStatePreview
		m.previewList = newPreviewList(msg.txs)
		m.previewList.Title = fmt.Sprintf("%s: %d transactions", m.filename, len(msg.txs))

		return m, nil

	case ingestResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Stored %d new transactions, %d already known.",
			msg.result.Inserted, msg.result.Skipped)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateParsing
		m.filename = filepath.Base(path)
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStatePreview, importStateResult:
		m.state = importStateFilePick
		m.parsed = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	case importStateParsing, importStateIngesting:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.state = importStateIngesting
		m.status = fmt.Sprintf("Storing %d transactions...", len(m.parsed))

		return m, m.ingestCmd()
	}

	var cmd tea.Cmd
	m.previewList, cmd = m.previewList.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select statement to import (%s):\n\n%s", importer.FormatRBPN, m.filePicker.View()),
		)
	case importStateParsing, importStateIngesting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStatePreview:
		return lipgloss.NewStyle().Padding(1).Render(
			m.previewList.View() + "\n" + faintStyle.Render(m.ShortHelp()),
		)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	return style.Render(successStyle.Render(m.status) + "\n\n(Esc to go back)")
}

// describeImportError spells out the typed import failures for the status line.
func describeImportError(err error) string {
	var (
		schemaErr    *transaction.SchemaError
		integrityErr *transaction.DataIntegrityError
		formatErr    *transaction.UnsupportedFormatError
	)

	switch {
	case errors.As(err, &schemaErr):
		return "Missing columns:\n  " + strings.Join(schemaErr.Missing, "\n  ")
	case errors.As(err, &integrityErr):
		return fmt.Sprintf("Row %d has no value for %s.", integrityErr.Row, integrityErr.Field)
	case errors.As(err, &formatErr):
		return fmt.Sprintf("Files with extension %q cannot be imported.", formatErr.Ext)
	}

	return fmt.Sprintf("Error: %v", err)
}

// Messages

type parseResultMsg struct {
	txs []*transaction.Raw
	err error
}

type ingestResultMsg struct {
	result *transaction.IngestResult
	err    error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parseResultMsg{err: err}
		}
		defer f.Close()

		txs, err := m.importService.Import(filepath.Base(path), f)

		return parseResultMsg{txs: txs, err: err}
	}
}

func (m ImportModel) ingestCmd() tea.Cmd {
	parsed := m.parsed

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.txService.Ingest(ctx, parsed)

		return ingestResultMsg{result: result, err: err}
	}
}

// Preview list

type previewItem struct {
	tx *transaction.Raw
}

func (i previewItem) Title() string       { return i.tx.ReceiverName }
func (i previewItem) Description() string { return i.tx.Purpose }
func (i previewItem) FilterValue() string { return i.tx.ReceiverName + " " + i.tx.Purpose }

func newPreviewList(txs []*transaction.Raw) list.Model {
	items := make([]list.Item, len(txs))
	for i, tx := range txs {
		items[i] = previewItem{tx: tx}
	}

	l := list.New(items, previewDelegate{}, 100, 20)
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)

	return l
}

type previewDelegate struct{}

func (d previewDelegate) Height() int                             { return 2 }
func (d previewDelegate) Spacing() int                            { return 0 }
func (d previewDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d previewDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(previewItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	tx := item.tx

	line1 := fmt.Sprintf("%s%s  %12s  %s",
		cursor,
		FormatDate(tx.BookingDate),
		FormatAmount(tx.Amount, tx.Currency),
		tx.ReceiverName,
	)

	line2 := faintStyle.Render(fmt.Sprintf("    %s | %s", tx.BookingText, tx.Purpose))

	fmt.Fprintf(w, "%s\n%s\n", line1, line2)
}
