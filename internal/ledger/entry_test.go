package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

func raw(id, receiver string) *transaction.Raw {
	return &transaction.Raw{
		ID:               id,
		SenderBankName:   "Volksbank",
		SenderIBAN:       "DE89370400440532013000",
		ReceiverName:     receiver,
		BookingText:      "Lastschrift",
		PurposeSignature: "einkauf",
		BookingDate:      time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

func label(id string, tx *transaction.Raw, categoryID int) *labeling.Label {
	return &labeling.Label{
		ID:        uuid.MustParse(id),
		Signature: tx.Signature(),
		Category:  category.Category{ID: categoryID},
	}
}

func TestJoin(t *testing.T) {
	rewe1 := raw("b_rewe", "Rewe")
	rewe2 := raw("a_rewe", "Rewe")
	lidl := raw("c_lidl", "Lidl")

	labels := []*labeling.Label{
		label("00000000-0000-0000-0000-000000000002", rewe1, 5),
	}

	entries := ledger.Join([]*transaction.Raw{rewe1, rewe2, lidl}, labels)

	require.Len(t, entries, 2)
	assert.Equal(t, "a_rewe", entries[0].Transaction.ID)
	assert.Equal(t, "b_rewe", entries[1].Transaction.ID)
	assert.Equal(t, 5, entries[0].Category.ID)
	assert.Equal(t, labels[0].ID, entries[0].LabelID)
}

func TestJoin_DoubleLabelYieldsTwoEntries(t *testing.T) {
	tx := raw("a_rewe", "Rewe")

	labels := []*labeling.Label{
		label("00000000-0000-0000-0000-000000000009", tx, 9),
		label("00000000-0000-0000-0000-000000000001", tx, 1),
	}

	entries := ledger.Join([]*transaction.Raw{tx}, labels)

	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Category.ID)
	assert.Equal(t, 9, entries[1].Category.ID)
}

func TestJoin_NoLabels(t *testing.T) {
	assert.Empty(t, ledger.Join([]*transaction.Raw{raw("a", "Rewe")}, nil))
}

func TestListFilter_Match(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2023, 3, d, 0, 0, 0, 0, time.UTC) }

	f := ledger.ListFilter{From: day(2), To: day(4)}

	assert.False(t, f.Match(day(1)))
	assert.True(t, f.Match(day(2)))
	assert.True(t, f.Match(day(4)))
	assert.False(t, f.Match(day(5)))
	assert.True(t, ledger.ListFilter{}.Match(day(1)))
}
