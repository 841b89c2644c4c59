package labeling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=labeling
type Repository interface {
	InsertLabel(ctx context.Context, l *Label) error
	ListLabels(ctx context.Context) ([]*Label, error)
	LabeledSignatures(ctx context.Context) ([]transaction.Signature, error)
	CountLabels(ctx context.Context) (int, error)
	PendingSignatures(ctx context.Context) ([]transaction.Signature, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// AssignLabel appends a label for sig. Existing labels for the same
// signature are left in place.
func (s *Service) AssignLabel(ctx context.Context, sig transaction.Signature, cat category.Category) (*Label, error) {
	l := &Label{
		ID:        uuid.New(),
		Signature: sig,
		Category:  cat,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.InsertLabel(ctx, l); err != nil {
		return nil, fmt.Errorf("insert label: %w", err)
	}

	slog.Info("participant labeled",
		"receiver", sig.ReceiverName,
		"purpose_signature", sig.PurposeSignature,
		"category_id", cat.ID,
	)

	return l, nil
}

// Pending lists the signatures observed in transactions that still lack a label.
func (s *Service) Pending(ctx context.Context) ([]transaction.Signature, error) {
	return s.repo.PendingSignatures(ctx)
}

func (s *Service) LabeledSignatures(ctx context.Context) ([]transaction.Signature, error) {
	return s.repo.LabeledSignatures(ctx)
}

func (s *Service) CountLabels(ctx context.Context) (int, error) {
	return s.repo.CountLabels(ctx)
}

func (s *Service) List(ctx context.Context) ([]*Label, error) {
	return s.repo.ListLabels(ctx)
}
