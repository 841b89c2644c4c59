package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/moneymap/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/moneymap/internal/category"
	categoryStore "github.com/MrJamesThe3rd/moneymap/internal/category/store"
	"github.com/MrJamesThe3rd/moneymap/internal/config"
	"github.com/MrJamesThe3rd/moneymap/internal/database"
	"github.com/MrJamesThe3rd/moneymap/internal/export"
	"github.com/MrJamesThe3rd/moneymap/internal/importer"
	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
	labelStore "github.com/MrJamesThe3rd/moneymap/internal/labeling/store"
	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/moneymap/internal/ledger/store"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
	txStore "github.com/MrJamesThe3rd/moneymap/internal/transaction/store"
)

type model struct {
	appName string

	txService       *transaction.Service
	importService   *importer.Service
	labelService    *labeling.Service
	categoryService *category.Service
	ledgerService   *ledger.Service
	exportService   *export.Service

	currentView View

	importView view.ImportModel
	labelView  view.LabelModel
	ledgerView view.LedgerModel
	exportView view.ExportModel
}

type View int

const (
	ViewMenu   View = 0
	ViewImport View = 1
	ViewLabel  View = 2
	ViewLedger View = 3
	ViewExport View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	impSvc := importer.NewService()
	labelSvc := labeling.NewService(labelStore.New(db))
	catSvc := category.NewService(categoryStore.New(db))
	ledgerSvc := ledger.NewService(ledgerStore.New(db), cfg.Ingest.BatchSize)
	expSvc := export.NewService(ledgerSvc)

	tax, err := category.LoadTaxonomy(cfg.Ingest.CategoriesFile)
	if err != nil {
		slog.Error("failed to load taxonomy", "error", err)
		os.Exit(1)
	}

	if _, err := catSvc.SeedIfEmpty(ctx, tax); err != nil {
		slog.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	return model{
		appName:         cfg.App.Name,
		txService:       txSvc,
		importService:   impSvc,
		labelService:    labelSvc,
		categoryService: catSvc,
		ledgerService:   ledgerSvc,
		exportService:   expSvc,
		currentView:     ViewMenu,
		importView:      view.NewImportModel(txSvc, impSvc),
		labelView:       view.NewLabelModel(labelSvc, catSvc),
		ledgerView:      view.NewLedgerModel(ledgerSvc),
		exportView:      view.NewExportModel(expSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.txService, m.importService)

				return m, m.importView.Init()
			case "2":
				m.currentView = ViewLabel
				m.labelView = view.NewLabelModel(m.labelService, m.categoryService)

				return m, m.labelView.Init()
			case "3":
				m.currentView = ViewLedger
				m.ledgerView = view.NewLedgerModel(m.ledgerService)

				return m, m.ledgerView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewLabel:
		var newModel tea.Model
		newModel, cmd = m.labelView.Update(msg)
		m.labelView = newModel.(view.LabelModel)
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				"1. Import Statement\n" +
				"2. Label Signatures\n" +
				"3. Browse Ledger\n" +
				"4. Export Ledger\n\n" +
				"q. Quit",
		)
	case ViewImport:
		return m.importView.View()
	case ViewLabel:
		return m.labelView.View()
	case ViewLedger:
		return m.ledgerView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
