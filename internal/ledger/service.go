package ledger

import (
	"context"
	"fmt"
	"log/slog"
)

const DefaultBatchSize = 10000

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	BeginRebuild(ctx context.Context) (RebuildTx, error)
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)
}

// RebuildTx replaces the ledger table in one unit of work. Readers keep
// seeing the previous ledger until Commit.
type RebuildTx interface {
	Clear(ctx context.Context) error
	// JoinPage returns up to limit joined entries ordered after the cursor.
	JoinPage(ctx context.Context, after Cursor, limit int) ([]*Entry, error)
	InsertEntries(ctx context.Context, entries []*Entry) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo      Repository
	batchSize int
}

func NewService(repo Repository, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &Service{repo: repo, batchSize: batchSize}
}

// Rebuild recomputes the ledger from all transactions and labels and
// returns the number of entries written.
func (s *Service) Rebuild(ctx context.Context) (int, error) {
	rtx, err := s.repo.BeginRebuild(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin rebuild: %w", err)
	}
	defer rtx.Rollback()

	if err := rtx.Clear(ctx); err != nil {
		return 0, fmt.Errorf("clear ledger: %w", err)
	}

	var (
		after   Cursor
		written int
	)

	for {
		page, err := rtx.JoinPage(ctx, after, s.batchSize)
		if err != nil {
			return 0, fmt.Errorf("join page after %s: %w", after.TransactionID, err)
		}

		if len(page) == 0 {
			break
		}

		if err := rtx.InsertEntries(ctx, page); err != nil {
			return 0, fmt.Errorf("insert ledger entries: %w", err)
		}

		written += len(page)
		after = page[len(page)-1].Cursor()

		if len(page) < s.batchSize {
			break
		}
	}

	if err := rtx.Commit(); err != nil {
		return 0, fmt.Errorf("commit rebuild: %w", err)
	}

	slog.Info("ledger rebuilt", "entries", written, "batch_size", s.batchSize)

	return written, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}
