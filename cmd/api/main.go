package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	categoryStore "github.com/MrJamesThe3rd/moneymap/internal/category/store"
	"github.com/MrJamesThe3rd/moneymap/internal/config"
	"github.com/MrJamesThe3rd/moneymap/internal/database"
	mmHttp "github.com/MrJamesThe3rd/moneymap/internal/http"
	categoryHandler "github.com/MrJamesThe3rd/moneymap/internal/http/category"
	importHandler "github.com/MrJamesThe3rd/moneymap/internal/http/importcsv"
	labelHandler "github.com/MrJamesThe3rd/moneymap/internal/http/labeling"
	ledgerHandler "github.com/MrJamesThe3rd/moneymap/internal/http/ledger"
	"github.com/MrJamesThe3rd/moneymap/internal/http/readcache"
	statsHandler "github.com/MrJamesThe3rd/moneymap/internal/http/statistics"
	"github.com/MrJamesThe3rd/moneymap/internal/importer"
	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
	labelStore "github.com/MrJamesThe3rd/moneymap/internal/labeling/store"
	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/moneymap/internal/ledger/store"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
	txStore "github.com/MrJamesThe3rd/moneymap/internal/transaction/store"
)

func main() {
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
	defer db.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		labelService       = labeling.NewService(labelStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		ledgerService      = ledger.NewService(ledgerStore.New(db), cfg.Ingest.BatchSize)
		importService      = importer.NewService()
	)

	tax, err := category.LoadTaxonomy(cfg.Ingest.CategoriesFile)
	if err != nil {
		slog.Error("failed to load taxonomy", "error", err)
		os.Exit(1)
	}

	if _, err := categoryService.SeedIfEmpty(ctx, tax); err != nil {
		slog.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	var (
		importH     = importHandler.NewHandler(importService, transactionService)
		labelH      = labelHandler.NewHandler(labelService, categoryService)
		categoryH   = categoryHandler.NewHandler(categoryService)
		ledgerH     = ledgerHandler.NewHandler(ledgerService)
		statisticsH = statsHandler.NewHandler(ledgerService)
	)

	router := mmHttp.New(importH, labelH, categoryH, ledgerH, statisticsH, readcache.New(cfg.Cache.Size, cfg.Cache.TTL))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
