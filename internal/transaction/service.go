package transaction

import (
	"context"
	"fmt"
	"log/slog"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	ListTransactions(ctx context.Context) ([]*Raw, error)
	DistinctSignatures(ctx context.Context) ([]Signature, error)

	BeginIngest(ctx context.Context) (IngestTx, error)
}

// IngestTx is a single unit of work against the transactions table.
// Nothing becomes visible until Commit.
type IngestTx interface {
	TransactionIDs(ctx context.Context) (map[string]struct{}, error)
	InsertTransactions(ctx context.Context, txs []*Raw) (int, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type IngestResult struct {
	Inserted int
	Skipped  int
}

// Ingest appends the candidates whose transaction id is not stored yet.
// Ids repeated within the batch keep their first occurrence. Re-ingesting
// the same file is a no-op.
func (s *Service) Ingest(ctx context.Context, candidates []*Raw) (*IngestResult, error) {
	if len(candidates) == 0 {
		return &IngestResult{}, nil
	}

	itx, err := s.repo.BeginIngest(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin ingest: %w", err)
	}
	defer itx.Rollback()

	stored, err := itx.TransactionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transaction ids: %w", err)
	}

	unseen := Unseen(candidates, stored)
	if len(unseen) == 0 {
		slog.Info("ingest: nothing new", "candidates", len(candidates))
		return &IngestResult{Skipped: len(candidates)}, nil
	}

	inserted, err := itx.InsertTransactions(ctx, unseen)
	if err != nil {
		return nil, fmt.Errorf("insert transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ingest: %w", err)
	}

	slog.Info("ingest: rows appended", "inserted", inserted, "candidates", len(candidates))

	return &IngestResult{Inserted: inserted, Skipped: len(candidates) - inserted}, nil
}

func (s *Service) List(ctx context.Context) ([]*Raw, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) Signatures(ctx context.Context) ([]Signature, error) {
	return s.repo.DistinctSignatures(ctx)
}

// Unseen returns the candidates whose id is neither in stored nor already
// taken by an earlier candidate, preserving input order.
func Unseen(candidates []*Raw, stored map[string]struct{}) []*Raw {
	taken := make(map[string]struct{}, len(candidates))

	var out []*Raw

	for _, c := range candidates {
		if _, ok := stored[c.ID]; ok {
			continue
		}

		if _, ok := taken[c.ID]; ok {
			continue
		}

		taken[c.ID] = struct{}{}
		out = append(out, c)
	}

	return out
}
