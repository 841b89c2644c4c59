package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Columns shared by the transactions and transactions_labeled tables, in scan order.
const SelectColumns = `
	t.transaction_id, t.sender_account_type, t.sender_iban, t.sender_bic, t.sender_bank_name,
	t.receiver_name, t.receiver_iban, t.receiver_bic, t.booking_date, t.value_date,
	t.amount, t.currency, t.booking_text, t.purpose, t.purpose_signature, t.balance_after_booking,
	t.notes, t.default_category, t.tax_relevant, t.creditor_id, t.mandate_reference
`

// ScanRaw reads the SelectColumns of one row into a Raw. Extra destinations
// are scanned after the transaction columns.
func ScanRaw(s scanner, extra ...any) (*transaction.Raw, error) {
	var tx transaction.Raw

	var senderBIC, receiverBIC, notes, defaultCategory, taxRelevant, creditorID, mandateRef sql.NullString

	var valueDate sql.NullTime

	dest := []any{
		&tx.ID, &tx.SenderAccountType, &tx.SenderIBAN, &senderBIC, &tx.SenderBankName,
		&tx.ReceiverName, &tx.ReceiverIBAN, &receiverBIC, &tx.BookingDate, &valueDate,
		&tx.Amount, &tx.Currency, &tx.BookingText, &tx.Purpose, &tx.PurposeSignature, &tx.BalanceAfterBooking,
		&notes, &defaultCategory, &taxRelevant, &creditorID, &mandateRef,
	}

	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	tx.SenderBIC = senderBIC.String
	tx.ReceiverBIC = receiverBIC.String
	tx.Notes = notes.String
	tx.DefaultCategory = defaultCategory.String
	tx.TaxRelevant = taxRelevant.String
	tx.CreditorID = creditorID.String
	tx.MandateReference = mandateRef.String

	if valueDate.Valid {
		tx.ValueDate = valueDate.Time
	}

	return &tx, nil
}

// RawArgs returns the insert arguments of a Raw in SelectColumns order.
func RawArgs(tx *transaction.Raw) []any {
	return []any{
		tx.ID, tx.SenderAccountType, tx.SenderIBAN, nullString(tx.SenderBIC), tx.SenderBankName,
		tx.ReceiverName, tx.ReceiverIBAN, nullString(tx.ReceiverBIC), tx.BookingDate, nullDate(tx.ValueDate),
		tx.Amount, tx.Currency, tx.BookingText, tx.Purpose, tx.PurposeSignature, tx.BalanceAfterBooking,
		nullString(tx.Notes), nullString(tx.DefaultCategory), nullString(tx.TaxRelevant),
		nullString(tx.CreditorID), nullString(tx.MandateReference),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullDate(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func (s *Store) ListTransactions(ctx context.Context) ([]*transaction.Raw, error) {
	query := `SELECT ` + SelectColumns + `
		FROM transactions t
		ORDER BY t.booking_date ASC, t.transaction_id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Raw

	for rows.Next() {
		tx, err := ScanRaw(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) DistinctSignatures(ctx context.Context) ([]transaction.Signature, error) {
	query := `
		SELECT DISTINCT sender_bank_name, sender_iban, receiver_name, receiver_iban, booking_text, purpose_signature
		FROM transactions
	`

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

type ingestTx struct {
	tx *sql.Tx
}

func (s *Store) BeginIngest(ctx context.Context) (transaction.IngestTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ingest tx: %w", err)
	}

	return &ingestTx{tx: dbTx}, nil
}

func (itx *ingestTx) Commit() error   { return itx.tx.Commit() }
func (itx *ingestTx) Rollback() error { return itx.tx.Rollback() }

func (itx *ingestTx) TransactionIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := itx.tx.QueryContext(ctx, `SELECT DISTINCT transaction_id FROM transactions`)
	if err != nil {
		return nil, fmt.Errorf("listing transaction ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning transaction id: %w", err)
		}

		ids[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction ids: %w", err)
	}

	return ids, nil
}

func (itx *ingestTx) InsertTransactions(ctx context.Context, txs []*transaction.Raw) (int, error) {
	query := `
		INSERT INTO transactions (
			transaction_id, sender_account_type, sender_iban, sender_bic, sender_bank_name,
			receiver_name, receiver_iban, receiver_bic, booking_date, value_date,
			amount, currency, booking_text, purpose, purpose_signature, balance_after_booking,
			notes, default_category, tax_relevant, creditor_id, mandate_reference
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (transaction_id) DO NOTHING
	`

	stmt, err := itx.tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0

	for _, tx := range txs {
		res, err := stmt.ExecContext(ctx, RawArgs(tx)...)
		if err != nil {
			return 0, fmt.Errorf("inserting transaction %s: %w", tx.ID, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("counting inserted rows: %w", err)
		}

		inserted += int(n)
	}

	return inserted, nil
}
