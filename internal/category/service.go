package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var ErrNotFound = errors.New("category not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CountDistinctIDs(ctx context.Context) (int, error)
	ReplaceCategories(ctx context.Context, cats []Category) error
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int) (*Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SeedIfEmpty writes the flattened taxonomy when the catalog holds no
// categories yet. An existing catalog is never modified, even if it differs
// from tax. It reports whether the catalog was written.
func (s *Service) SeedIfEmpty(ctx context.Context, tax *Taxonomy) (bool, error) {
	n, err := s.repo.CountDistinctIDs(ctx)
	if err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}

	if n > 0 {
		slog.Info("category catalog already exists", "categories", n)
		return false, nil
	}

	cats := tax.Flatten()
	if err := s.repo.ReplaceCategories(ctx, cats); err != nil {
		return false, fmt.Errorf("seed categories: %w", err)
	}

	slog.Info("category catalog seeded", "categories", len(cats))

	return true, nil
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// Get returns ErrNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id int) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}
