package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
)

// Lister reads ledger entries.
type Lister interface {
	List(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Entry, error)
}

// Result describes a written export file.
type Result struct {
	Path    string
	Entries []*ledger.Entry
}

// Service writes the labeled ledger to disk.
type Service struct {
	ledger Lister
}

// NewService creates a new export Service.
func NewService(l Lister) *Service {
	return &Service{ledger: l}
}

var header = []string{
	"booking_date", "receiver_name", "booking_text", "purpose", "amount", "currency",
	"balance_after_booking", "category_1", "category_2", "category_3",
}

// Export writes the ledger entries matching filter as a semicolon CSV into outputDir.
func (s *Service) Export(ctx context.Context, filter ledger.ListFilter, outputDir string) (*Result, error) {
	entries, err := s.ledger.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing ledger: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outputDir, filename(filter))

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		tx := e.Transaction
		if err := w.Write([]string{
			tx.BookingDate.Format("2006-01-02"), tx.ReceiverName, tx.BookingText, tx.Purpose,
			tx.Amount.StringFixed(2), tx.Currency, tx.BalanceAfterBooking.StringFixed(2),
			e.Category.Level1, e.Category.Level2, e.Category.Level3,
		}); err != nil {
			return nil, fmt.Errorf("writing entry %s: %w", tx.ID, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return &Result{Path: path, Entries: entries}, nil
}

// filename encodes the filter range, e.g. ledger_20230101-20230331.csv.
func filename(filter ledger.ListFilter) string {
	from, to := "start", "end"
	if !filter.From.IsZero() {
		from = filter.From.Format("20060102")
	}

	if !filter.To.IsZero() {
		to = filter.To.Format("20060102")
	}

	return fmt.Sprintf("ledger_%s-%s.csv", from, to)
}

// Summary renders one line per entry for pasting into a message.
func Summary(entries []*ledger.Entry) string {
	var sb strings.Builder

	for _, e := range entries {
		tx := e.Transaction
		sb.WriteString(fmt.Sprintf("* %s | %s | %s € | %s / %s / %s\n",
			tx.BookingDate.Format("2006-01-02"), tx.ReceiverName, tx.Amount.StringFixed(2),
			e.Category.Level1, e.Category.Level2, e.Category.Level3))
	}

	return sb.String()
}
