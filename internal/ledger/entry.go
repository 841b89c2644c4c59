package ledger

import (
	"bytes"
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

// Entry is a stored transaction joined with one label of its signature.
type Entry struct {
	Transaction transaction.Raw
	LabelID     uuid.UUID
	Category    category.Category
}

// Cursor marks the last entry of a page; the next page starts after it.
type Cursor struct {
	TransactionID string
	LabelID       uuid.UUID
}

func (e *Entry) Cursor() Cursor {
	return Cursor{TransactionID: e.Transaction.ID, LabelID: e.LabelID}
}

// Compare orders cursors by transaction id, then label id, both bytewise.
func (c Cursor) Compare(o Cursor) int {
	if n := cmp.Compare(c.TransactionID, o.TransactionID); n != 0 {
		return n
	}

	return bytes.Compare(c.LabelID[:], o.LabelID[:])
}

// ListFilter restricts ledger reads to an inclusive booking date range.
// Zero bounds are open.
type ListFilter struct {
	From time.Time
	To   time.Time
}

func (f ListFilter) Match(bookingDate time.Time) bool {
	if !f.From.IsZero() && bookingDate.Before(f.From) {
		return false
	}

	if !f.To.IsZero() && bookingDate.After(f.To) {
		return false
	}

	return true
}

// Join pairs every transaction with every label of the same signature.
// Transactions without a label are dropped. A signature labeled more than
// once yields one entry per label. The result is ordered by Cursor.
func Join(txs []*transaction.Raw, labels []*labeling.Label) []*Entry {
	bySig := make(map[transaction.Signature][]*labeling.Label, len(labels))
	for _, l := range labels {
		bySig[l.Signature] = append(bySig[l.Signature], l)
	}

	var entries []*Entry

	for _, tx := range txs {
		for _, l := range bySig[tx.Signature()] {
			entries = append(entries, &Entry{
				Transaction: *tx,
				LabelID:     l.ID,
				Category:    l.Category,
			})
		}
	}

	slices.SortFunc(entries, func(a, b *Entry) int {
		return a.Cursor().Compare(b.Cursor())
	})

	return entries
}
