package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// signatureJoin matches a label row p to a transaction row t on every signature field.
const signatureJoin = `
	p.sender_bank_name = t.sender_bank_name
	AND p.sender_iban = t.sender_iban
	AND p.receiver_name = t.receiver_name
	AND p.receiver_iban = t.receiver_iban
	AND p.booking_text = t.booking_text
	AND p.purpose_signature = t.purpose_signature
`

func (s *Store) InsertLabel(ctx context.Context, l *labeling.Label) error {
	query := `
		INSERT INTO participants_labeled (
			id, sender_bank_name, sender_iban, receiver_name, receiver_iban, booking_text, purpose_signature,
			category_id, category_1, category_2, category_3, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	sig := l.Signature

	_, err := s.db.ExecContext(ctx, query,
		l.ID, sig.SenderBankName, sig.SenderIBAN, sig.ReceiverName, sig.ReceiverIBAN, sig.BookingText, sig.PurposeSignature,
		l.Category.ID, l.Category.Level1, l.Category.Level2, l.Category.Level3, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting label: %w", err)
	}

	return nil
}

func (s *Store) ListLabels(ctx context.Context) ([]*labeling.Label, error) {
	query := `
		SELECT id, sender_bank_name, sender_iban, receiver_name, receiver_iban, booking_text, purpose_signature,
			category_id, category_1, category_2, category_3, created_at
		FROM participants_labeled
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	defer rows.Close()

	var labels []*labeling.Label

	for rows.Next() {
		var l labeling.Label

		sig := &l.Signature
		if err := rows.Scan(
			&l.ID, &sig.SenderBankName, &sig.SenderIBAN, &sig.ReceiverName, &sig.ReceiverIBAN, &sig.BookingText,
			&sig.PurposeSignature, &l.Category.ID, &l.Category.Level1, &l.Category.Level2, &l.Category.Level3,
			&l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning label: %w", err)
		}

		labels = append(labels, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating labels: %w", err)
	}

	return labels, nil
}

func (s *Store) LabeledSignatures(ctx context.Context) ([]transaction.Signature, error) {
	query := `
		SELECT DISTINCT sender_bank_name, sender_iban, receiver_name, receiver_iban, booking_text, purpose_signature
		FROM participants_labeled
	`

	return s.querySignatures(ctx, query)
}

func (s *Store) CountLabels(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants_labeled`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting labels: %w", err)
	}

	return n, nil
}

// PendingSignatures is the anti-join of transaction signatures against labels.
// COLLATE "C" gives byte order, matching labeling.Pending.
func (s *Store) PendingSignatures(ctx context.Context) ([]transaction.Signature, error) {
	query := `
		SELECT s.sender_bank_name, s.sender_iban, s.receiver_name, s.receiver_iban, s.booking_text, s.purpose_signature
		FROM (
			SELECT DISTINCT t.sender_bank_name, t.sender_iban, t.receiver_name, t.receiver_iban, t.booking_text, t.purpose_signature
			FROM transactions t
			WHERE NOT EXISTS (
				SELECT 1 FROM participants_labeled p WHERE ` + signatureJoin + `
			)
		) s
		ORDER BY
			s.receiver_name COLLATE "C",
			s.purpose_signature COLLATE "C",
			s.sender_bank_name COLLATE "C",
			s.sender_iban COLLATE "C",
			s.receiver_iban COLLATE "C",
			s.booking_text COLLATE "C"
	`

	return s.querySignatures(ctx, query)
}

func (s *Store) querySignatures(ctx context.Context, query string) ([]transaction.Signature, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing signatures: %w", err)
	}
	defer rows.Close()

	var sigs []transaction.Signature

	for rows.Next() {
		var sig transaction.Signature
		if err := rows.Scan(
			&sig.SenderBankName, &sig.SenderIBAN, &sig.ReceiverName,
			&sig.ReceiverIBAN, &sig.BookingText, &sig.PurposeSignature,
		); err != nil {
			return nil, fmt.Errorf("scanning signature: %w", err)
		}

		sigs = append(sigs, sig)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating signatures: %w", err)
	}

	return sigs, nil
}
