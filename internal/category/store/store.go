package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CountDistinctIDs(ctx context.Context) (int, error) {
	var n int

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT category_id) FROM transaction_categories`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting categories: %w", err)
	}

	return n, nil
}

// ReplaceCategories swaps the whole catalog in one transaction.
func (s *Store) ReplaceCategories(ctx context.Context, cats []category.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transaction_categories`); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transaction_categories (category_id, category_1, category_2, category_3)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cats {
		if _, err := stmt.ExecContext(ctx, c.ID, c.Level1, c.Level2, c.Level3); err != nil {
			return fmt.Errorf("inserting category %d: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

func (s *Store) ListCategories(ctx context.Context) ([]category.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, category_1, category_2, category_3
		FROM transaction_categories
		ORDER BY category_id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []category.Category

	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Level1, &c.Level2, &c.Level3); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return cats, nil
}

func (s *Store) GetCategory(ctx context.Context, id int) (*category.Category, error) {
	var c category.Category

	err := s.db.QueryRowContext(ctx, `
		SELECT category_id, category_1, category_2, category_3
		FROM transaction_categories
		WHERE category_id = $1
	`, id).Scan(&c.ID, &c.Level1, &c.Level2, &c.Level3)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category %d: %w", id, err)
	}

	return &c, nil
}
