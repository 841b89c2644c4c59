package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
	txstore "github.com/MrJamesThe3rd/moneymap/internal/transaction/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanEntry reads txstore.SelectColumns followed by label id and category columns.
func scanEntry(rows *sql.Rows) (*ledger.Entry, error) {
	var e ledger.Entry

	tx, err := txstore.ScanRaw(rows,
		&e.LabelID, &e.Category.ID, &e.Category.Level1, &e.Category.Level2, &e.Category.Level3,
	)
	if err != nil {
		return nil, err
	}

	e.Transaction = *tx

	return &e, nil
}

func collectEntries(rows *sql.Rows) ([]*ledger.Entry, error) {
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger entries: %w", err)
	}

	return entries, nil
}

func (s *Store) ListEntries(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Entry, error) {
	var (
		conditions []string
		args       []any
		argIdx     = 1
	)

	if !filter.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("t.booking_date >= $%d", argIdx))
		args = append(args, filter.From)
		argIdx++
	}

	if !filter.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("t.booking_date <= $%d", argIdx))
		args = append(args, filter.To)
	}

	query := `SELECT ` + txstore.SelectColumns + `,
			t.label_id, t.category_id, t.category_1, t.category_2, t.category_3
		FROM transactions_labeled t`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += ` ORDER BY t.booking_date ASC, t.transaction_id COLLATE "C" ASC, t.label_id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ledger: %w", err)
	}

	return collectEntries(rows)
}

type rebuildTx struct {
	tx *sql.Tx
}

func (s *Store) BeginRebuild(ctx context.Context) (ledger.RebuildTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning rebuild tx: %w", err)
	}

	return &rebuildTx{tx: dbTx}, nil
}

func (rtx *rebuildTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *rebuildTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *rebuildTx) Clear(ctx context.Context) error {
	if _, err := rtx.tx.ExecContext(ctx, `DELETE FROM transactions_labeled`); err != nil {
		return fmt.Errorf("clearing ledger: %w", err)
	}

	return nil
}

func (rtx *rebuildTx) JoinPage(ctx context.Context, after ledger.Cursor, limit int) ([]*ledger.Entry, error) {
	query := `SELECT ` + txstore.SelectColumns + `,
			p.id, p.category_id, p.category_1, p.category_2, p.category_3
		FROM transactions t
		JOIN participants_labeled p ON
			p.sender_bank_name = t.sender_bank_name
			AND p.sender_iban = t.sender_iban
			AND p.receiver_name = t.receiver_name
			AND p.receiver_iban = t.receiver_iban
			AND p.booking_text = t.booking_text
			AND p.purpose_signature = t.purpose_signature
		WHERE t.transaction_id COLLATE "C" > $1
			OR (t.transaction_id = $1 AND p.id > $2)
		ORDER BY t.transaction_id COLLATE "C" ASC, p.id ASC
		LIMIT $3`

	rows, err := rtx.tx.QueryContext(ctx, query, after.TransactionID, after.LabelID, limit)
	if err != nil {
		return nil, fmt.Errorf("joining page: %w", err)
	}

	return collectEntries(rows)
}

func (rtx *rebuildTx) InsertEntries(ctx context.Context, entries []*ledger.Entry) error {
	query := `
		INSERT INTO transactions_labeled (
			transaction_id, sender_account_type, sender_iban, sender_bic, sender_bank_name,
			receiver_name, receiver_iban, receiver_bic, booking_date, value_date,
			amount, currency, booking_text, purpose, purpose_signature, balance_after_booking,
			notes, default_category, tax_relevant, creditor_id, mandate_reference,
			label_id, category_id, category_1, category_2, category_3
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21,
			$22, $23, $24, $25, $26)
	`

	stmt, err := rtx.tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		args := append(txstore.RawArgs(&e.Transaction),
			e.LabelID, e.Category.ID, e.Category.Level1, e.Category.Level2, e.Category.Level3,
		)

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting ledger entry %s: %w", e.Transaction.ID, err)
		}
	}

	return nil
}
