package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

type labelState int

const (
	labelStateLoading labelState = iota
	labelStateChoosing
	labelStateSaving
	labelStateDone
)

// categoryLevel is the taxonomy level the form currently asks for.
type categoryLevel int

const (
	levelOne categoryLevel = iota
	levelTwo
	levelThree
)

// labelChoice holds the form bindings. It lives on the heap so that copies of
// the model share it with the form.
type labelChoice struct {
	level1 string
	level2 string
	leafID int
}

type LabelModel struct {
	CommonModel
	labelService    *labeling.Service
	categoryService *category.Service

	state labelState
	level categoryLevel
	form  *huh.Form

	categories []category.Category
	queue      []transaction.Signature
	current    transaction.Signature
	choice     *labelChoice

	total    int
	labeled  int
	assigned int
	skipped  int

	status string
	err    error
}

func NewLabelModel(labelSvc *labeling.Service, catSvc *category.Service) LabelModel {
	return LabelModel{
		labelService:    labelSvc,
		categoryService: catSvc,
		state:           labelStateLoading,
		choice:          &labelChoice{},
	}
}

func (m LabelModel) Title() string { return "Label Signatures" }

func (m LabelModel) ShortHelp() string {
	if m.state == labelStateChoosing {
		return "Enter: choose | Esc: up one level | ctrl+n: skip"
	}

	return "Esc: back"
}

func (m LabelModel) Init() tea.Cmd {
	return m.loadPendingCmd()
}

func (m LabelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pendingLoadedMsg:
		if msg.err != nil {
			m.state = labelStateDone
			m.err = msg.err

			return m, nil
		}

		m.categories = msg.categories
		m.queue = msg.pending
		m.total = len(msg.pending)
		m.labeled = msg.labeled

		return m.next()

	case labelSavedMsg:
		if msg.err != nil {
			m.state = labelStateChoosing
			m.status = fmt.Sprintf("Error saving: %v", msg.err)

			cmd := m.buildForm()

			return m, cmd
		}

		m.assigned++
		m.labeled++
		m.status = fmt.Sprintf("Labeled as %s", FormatCategory(msg.label.Category))

		return m.next()

	case tea.KeyMsg:
		if m.state != labelStateChoosing {
			if msg.Type == tea.KeyEsc {
				return m, Back
			}

			return m, nil
		}

		switch msg.String() {
		case "esc":
			if m.level == levelOne {
				return m, Back
			}

			m.level--

			cmd := m.buildForm()

			return m, cmd
		case "ctrl+n":
			m.skipped++
			m.status = "Skipped"

			return m.next()
		}
	}

	if m.state != labelStateChoosing || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m.advance()
}

// advance moves the cascade one level down, or saves once a leaf is chosen.
func (m LabelModel) advance() (tea.Model, tea.Cmd) {
	if m.level < levelThree {
		m.level++
		cmd := m.buildForm()

		return m, cmd
	}

	cat, ok := m.leaf(m.choice.leafID)
	if !ok {
		m.status = fmt.Sprintf("Unknown category %d", m.choice.leafID)
		m.level = levelOne

		cmd := m.buildForm()

		return m, cmd
	}

	m.state = labelStateSaving

	return m, m.saveCmd(m.current, cat)
}

// next pops the following signature off the queue and opens a fresh cascade.
func (m LabelModel) next() (tea.Model, tea.Cmd) {
	if len(m.queue) == 0 {
		m.state = labelStateDone
		m.form = nil

		return m, nil
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]
	m.state = labelStateChoosing
	m.level = levelOne
	m.choice = &labelChoice{}

	cmd := m.buildForm()

	return m, cmd
}

func (m *LabelModel) buildForm() tea.Cmd {
	var field huh.Field

	switch m.level {
	case levelOne:
		field = huh.NewSelect[string]().
			Title("Category").
			Options(huh.NewOptions(category.Level1Options(m.categories)...)...).
			Value(&m.choice.level1)
	case levelTwo:
		field = huh.NewSelect[string]().
			Title(m.choice.level1).
			Options(huh.NewOptions(category.Level2Options(m.categories, m.choice.level1)...)...).
			Value(&m.choice.level2)
	case levelThree:
		leaves := category.Level3Options(m.categories, m.choice.level1, m.choice.level2)

		opts := make([]huh.Option[int], len(leaves))
		for i, c := range leaves {
			opts[i] = huh.NewOption(c.Level3, c.ID)
		}

		field = huh.NewSelect[int]().
			Title(m.choice.level1 + " / " + m.choice.level2).
			Options(opts...).
			Value(&m.choice.leafID)
	}

	m.form = huh.NewForm(huh.NewGroup(field)).WithWidth(50).WithShowHelp(false)

	return m.form.Init()
}

func (m LabelModel) leaf(id int) (category.Category, bool) {
	for _, c := range m.categories {
		if c.ID == id {
			return c, true
		}
	}

	return category.Category{}, false
}

func (m LabelModel) View() string {
	style := lipgloss.NewStyle().Padding(1, 2)

	switch m.state {
	case labelStateLoading:
		return style.Render("Loading pending signatures...")
	case labelStateSaving:
		return style.Render("Saving label...")
	case labelStateDone:
		if m.err != nil {
			return style.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to back)")
		}

		return style.Render(successStyle.Render(fmt.Sprintf(
			"Nothing left to label. Assigned %d, skipped %d, %d labels in total.",
			m.assigned, m.skipped, m.labeled,
		)) + "\n\n(Esc to back)")
	}

	progress := fmt.Sprintf("Signature %d/%d  (%d labels stored)",
		m.total-len(m.queue), m.total, m.labeled)

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(FormatSignature(m.current))

	content := lipgloss.JoinVertical(lipgloss.Left,
		accentStyle.Render(progress),
		"",
		panel,
		"",
		m.form.View(),
		"",
		faintStyle.Render(m.status),
		faintStyle.Render(m.ShortHelp()),
	)

	return style.Render(content)
}

// Messages

type pendingLoadedMsg struct {
	pending    []transaction.Signature
	categories []category.Category
	labeled    int
	err        error
}

type labelSavedMsg struct {
	label *labeling.Label
	err   error
}

func (m LabelModel) loadPendingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cats, err := m.categoryService.List(ctx)
		if err != nil {
			return pendingLoadedMsg{err: err}
		}

		pending, err := m.labelService.Pending(ctx)
		if err != nil {
			return pendingLoadedMsg{err: err}
		}

		labeled, err := m.labelService.CountLabels(ctx)
		if err != nil {
			return pendingLoadedMsg{err: err}
		}

		return pendingLoadedMsg{pending: pending, categories: cats, labeled: labeled}
	}
}

func (m LabelModel) saveCmd(sig transaction.Signature, cat category.Category) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		label, err := m.labelService.AssignLabel(ctx, sig, cat)

		return labelSavedMsg{label: label, err: err}
	}
}
