// Package memstore keeps every repository in process memory. It backs the
// generator dry run and pipeline tests.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

type Store struct {
	mu           sync.Mutex
	transactions map[string]*transaction.Raw
	labels       []*labeling.Label
	categories   []category.Category
	ledger       []*ledger.Entry
}

func New() *Store {
	return &Store{transactions: make(map[string]*transaction.Raw)}
}

func (s *Store) sortedTransactions() []*transaction.Raw {
	txs := make([]*transaction.Raw, 0, len(s.transactions))
	for _, tx := range s.transactions {
		cp := *tx
		txs = append(txs, &cp)
	}

	slices.SortFunc(txs, func(a, b *transaction.Raw) int {
		if c := a.BookingDate.Compare(b.BookingDate); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return txs
}

// Transactions

func (s *Store) ListTransactions(_ context.Context) ([]*transaction.Raw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedTransactions(), nil
}

func (s *Store) DistinctSignatures(_ context.Context) ([]transaction.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return distinctSignatures(s.sortedTransactions()), nil
}

func distinctSignatures(txs []*transaction.Raw) []transaction.Signature {
	seen := make(map[transaction.Signature]struct{})

	var sigs []transaction.Signature

	for _, tx := range txs {
		sig := tx.Signature()
		if _, ok := seen[sig]; ok {
			continue
		}

		seen[sig] = struct{}{}
		sigs = append(sigs, sig)
	}

	return sigs
}

type ingestTx struct {
	store   *Store
	pending []*transaction.Raw
}

func (s *Store) BeginIngest(_ context.Context) (transaction.IngestTx, error) {
	return &ingestTx{store: s}, nil
}

func (itx *ingestTx) TransactionIDs(_ context.Context) (map[string]struct{}, error) {
	itx.store.mu.Lock()
	defer itx.store.mu.Unlock()

	ids := make(map[string]struct{}, len(itx.store.transactions))
	for id := range itx.store.transactions {
		ids[id] = struct{}{}
	}

	return ids, nil
}

// InsertTransactions stages rows until Commit. Ids already stored or staged are skipped.
func (itx *ingestTx) InsertTransactions(_ context.Context, txs []*transaction.Raw) (int, error) {
	itx.store.mu.Lock()
	defer itx.store.mu.Unlock()

	staged := make(map[string]struct{}, len(itx.pending))
	for _, tx := range itx.pending {
		staged[tx.ID] = struct{}{}
	}

	inserted := 0

	for _, tx := range txs {
		if _, ok := itx.store.transactions[tx.ID]; ok {
			continue
		}

		if _, ok := staged[tx.ID]; ok {
			continue
		}

		cp := *tx
		staged[tx.ID] = struct{}{}
		itx.pending = append(itx.pending, &cp)
		inserted++
	}

	return inserted, nil
}

func (itx *ingestTx) Commit() error {
	itx.store.mu.Lock()
	defer itx.store.mu.Unlock()

	for _, tx := range itx.pending {
		if _, ok := itx.store.transactions[tx.ID]; !ok {
			itx.store.transactions[tx.ID] = tx
		}
	}

	itx.pending = nil

	return nil
}

func (itx *ingestTx) Rollback() error {
	itx.pending = nil
	return nil
}

// Labels

func (s *Store) InsertLabel(_ context.Context, l *labeling.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *l
	s.labels = append(s.labels, &cp)

	return nil
}

func (s *Store) ListLabels(_ context.Context) ([]*labeling.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyLabels(), nil
}

func (s *Store) copyLabels() []*labeling.Label {
	out := make([]*labeling.Label, len(s.labels))
	for i, l := range s.labels {
		cp := *l
		out[i] = &cp
	}

	return out
}

func (s *Store) LabeledSignatures(_ context.Context) ([]transaction.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.labeledSignatures(), nil
}

func (s *Store) labeledSignatures() []transaction.Signature {
	seen := make(map[transaction.Signature]struct{})

	var sigs []transaction.Signature

	for _, l := range s.labels {
		if _, ok := seen[l.Signature]; ok {
			continue
		}

		seen[l.Signature] = struct{}{}
		sigs = append(sigs, l.Signature)
	}

	return sigs
}

func (s *Store) CountLabels(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.labels), nil
}

func (s *Store) PendingSignatures(_ context.Context) ([]transaction.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return labeling.Pending(distinctSignatures(s.sortedTransactions()), s.labeledSignatures()), nil
}

// Categories

func (s *Store) CountDistinctIDs(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make(map[int]struct{}, len(s.categories))
	for _, c := range s.categories {
		ids[c.ID] = struct{}{}
	}

	return len(ids), nil
}

func (s *Store) ReplaceCategories(_ context.Context, cats []category.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = slices.Clone(cats)

	return nil
}

func (s *Store) ListCategories(_ context.Context) ([]category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := slices.Clone(s.categories)
	slices.SortFunc(cats, func(a, b category.Category) int { return cmp.Compare(a.ID, b.ID) })

	return cats, nil
}

func (s *Store) GetCategory(_ context.Context, id int) (*category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.ID == id {
			return &c, nil
		}
	}

	return nil, category.ErrNotFound
}

// Ledger

func (s *Store) ListEntries(_ context.Context, filter ledger.ListFilter) ([]*ledger.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*ledger.Entry

	for _, e := range s.ledger {
		if !filter.Match(e.Transaction.BookingDate) {
			continue
		}

		cp := *e
		out = append(out, &cp)
	}

	slices.SortStableFunc(out, func(a, b *ledger.Entry) int {
		return a.Transaction.BookingDate.Compare(b.Transaction.BookingDate)
	})

	return out, nil
}

type rebuildTx struct {
	store   *Store
	cleared bool
	staged  []*ledger.Entry
}

func (s *Store) BeginRebuild(_ context.Context) (ledger.RebuildTx, error) {
	return &rebuildTx{store: s}, nil
}

func (rtx *rebuildTx) Clear(_ context.Context) error {
	rtx.cleared = true
	rtx.staged = nil

	return nil
}

func (rtx *rebuildTx) JoinPage(_ context.Context, after ledger.Cursor, limit int) ([]*ledger.Entry, error) {
	rtx.store.mu.Lock()
	defer rtx.store.mu.Unlock()

	joined := ledger.Join(rtx.store.sortedTransactions(), rtx.store.copyLabels())

	start, _ := slices.BinarySearchFunc(joined, after, func(e *ledger.Entry, c ledger.Cursor) int {
		return e.Cursor().Compare(c)
	})

	for start < len(joined) && joined[start].Cursor().Compare(after) <= 0 {
		start++
	}

	end := min(start+limit, len(joined))

	return joined[start:end], nil
}

func (rtx *rebuildTx) InsertEntries(_ context.Context, entries []*ledger.Entry) error {
	for _, e := range entries {
		cp := *e
		rtx.staged = append(rtx.staged, &cp)
	}

	return nil
}

func (rtx *rebuildTx) Commit() error {
	rtx.store.mu.Lock()
	defer rtx.store.mu.Unlock()

	if rtx.cleared {
		rtx.store.ledger = nil
	}

	rtx.store.ledger = append(rtx.store.ledger, rtx.staged...)
	rtx.staged = nil

	return nil
}

func (rtx *rebuildTx) Rollback() error {
	rtx.staged = nil
	return nil
}
