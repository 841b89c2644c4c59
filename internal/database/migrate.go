package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema creates the four tables if they do not exist. Identity columns of
// the participant signature are NOT NULL so the label join can use plain
// equality; absent values are stored as empty strings.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS transaction_categories (
		category_id INTEGER PRIMARY KEY,
		category_1  TEXT NOT NULL,
		category_2  TEXT NOT NULL,
		category_3  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS participants_labeled (
		id                UUID PRIMARY KEY,
		sender_bank_name  TEXT NOT NULL,
		sender_iban       TEXT NOT NULL,
		receiver_name     TEXT NOT NULL,
		receiver_iban     TEXT NOT NULL,
		booking_text      TEXT NOT NULL,
		purpose_signature TEXT NOT NULL,
		category_id       INTEGER NOT NULL,
		category_1        TEXT NOT NULL,
		category_2        TEXT NOT NULL,
		category_3        TEXT NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id        TEXT PRIMARY KEY,
		sender_account_type   TEXT NOT NULL,
		sender_iban           TEXT NOT NULL,
		sender_bic            TEXT,
		sender_bank_name      TEXT NOT NULL,
		receiver_name         TEXT NOT NULL,
		receiver_iban         TEXT NOT NULL,
		receiver_bic          TEXT,
		booking_date          DATE NOT NULL,
		value_date            DATE,
		amount                NUMERIC(14, 2) NOT NULL,
		currency              TEXT NOT NULL,
		booking_text          TEXT NOT NULL,
		purpose               TEXT NOT NULL,
		purpose_signature     TEXT NOT NULL,
		balance_after_booking NUMERIC(14, 2) NOT NULL,
		notes                 TEXT,
		default_category      TEXT,
		tax_relevant          TEXT,
		creditor_id           TEXT,
		mandate_reference     TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS transactions_labeled (
		transaction_id        TEXT NOT NULL,
		sender_account_type   TEXT NOT NULL,
		sender_iban           TEXT NOT NULL,
		sender_bic            TEXT,
		sender_bank_name      TEXT NOT NULL,
		receiver_name         TEXT NOT NULL,
		receiver_iban         TEXT NOT NULL,
		receiver_bic          TEXT,
		booking_date          DATE NOT NULL,
		value_date            DATE,
		amount                NUMERIC(14, 2) NOT NULL,
		currency              TEXT NOT NULL,
		booking_text          TEXT NOT NULL,
		purpose               TEXT NOT NULL,
		purpose_signature     TEXT NOT NULL,
		balance_after_booking NUMERIC(14, 2) NOT NULL,
		notes                 TEXT,
		default_category      TEXT,
		tax_relevant          TEXT,
		creditor_id           TEXT,
		mandate_reference     TEXT,
		label_id              UUID NOT NULL,
		category_id           INTEGER NOT NULL,
		category_1            TEXT NOT NULL,
		category_2            TEXT NOT NULL,
		category_3            TEXT NOT NULL,
		PRIMARY KEY (transaction_id, label_id)
	)`,
	`CREATE INDEX IF NOT EXISTS transactions_labeled_booking_date_idx ON transactions_labeled (booking_date)`,
}

// Migrate applies Schema in a single transaction.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range Schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	return tx.Commit()
}
