package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymap/internal/generator"
	"github.com/MrJamesThe3rd/moneymap/internal/importer"
	"github.com/MrJamesThe3rd/moneymap/internal/memstore"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

func main() {
	defaults := generator.DefaultParams()

	var (
		out       = flag.String("out", "", "output file (stdout when empty)")
		seed      = flag.Uint64("seed", 1234, "random seed")
		start     = flag.String("start", defaults.Start.Format(time.DateOnly), "first booking date (YYYY-MM-DD)")
		end       = flag.String("end", defaults.End.Format(time.DateOnly), "last booking date (YYYY-MM-DD)")
		senders   = flag.Int("senders", defaults.Senders, "number of sender accounts")
		receivers = flag.Int("receivers", defaults.Receivers, "receivers per sender")
		balance   = flag.String("balance", defaults.StartBalance.String(), "start balance")
		dryRun    = flag.Bool("dry-run", false, "ingest the export into memory and print counts instead of writing it")
	)

	flag.Parse()

	params, err := buildParams(defaults, *start, *end, *balance)
	if err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(2)
	}

	params.Senders = *senders
	params.Receivers = *receivers

	rows, err := generator.New(*seed).Generate(params)
	if err != nil {
		slog.Error("failed to generate transactions", "error", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	if err := generator.WriteCSV(&buf, rows); err != nil {
		slog.Error("failed to write export", "error", err)
		os.Exit(1)
	}

	if *dryRun {
		if err := ingest(&buf); err != nil {
			slog.Error("dry run failed", "error", err)
			os.Exit(1)
		}

		return
	}

	if err := write(*out, buf.Bytes()); err != nil {
		slog.Error("failed to write output", "error", err)
		os.Exit(1)
	}

	slog.Info("export generated", "rows", len(rows), "seed", *seed)
}

func buildParams(p generator.Params, start, end, balance string) (generator.Params, error) {
	var err error

	if p.Start, err = time.Parse(time.DateOnly, start); err != nil {
		return p, fmt.Errorf("parse start: %w", err)
	}

	if p.End, err = time.Parse(time.DateOnly, end); err != nil {
		return p, fmt.Errorf("parse end: %w", err)
	}

	if p.StartBalance, err = decimal.NewFromString(balance); err != nil {
		return p, fmt.Errorf("parse balance: %w", err)
	}

	return p, nil
}

// ingest runs the export through the importer and an in-memory store.
func ingest(r io.Reader) error {
	txs, err := importer.NewService().Import("generated.csv", r)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	store := memstore.New()

	res, err := transaction.NewService(store).Ingest(context.Background(), txs)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	sigs, err := store.DistinctSignatures(context.Background())
	if err != nil {
		return fmt.Errorf("signatures: %w", err)
	}

	fmt.Printf("parsed=%d inserted=%d skipped=%d participants=%d\n", len(txs), res.Inserted, res.Skipped, len(sigs))

	return nil
}

func write(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
