package labeling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/moneymap/internal/labeling"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

func sig(receiver, purpose string) transaction.Signature {
	return transaction.Signature{
		SenderBankName:   "Volksbank",
		SenderIBAN:       "DE89370400440532013000",
		ReceiverName:     receiver,
		BookingText:      "Lastschrift",
		PurposeSignature: purpose,
	}
}

func TestPending(t *testing.T) {
	tests := []struct {
		name     string
		observed []transaction.Signature
		labeled  []transaction.Signature
		want     []transaction.Signature
	}{
		{
			name:     "NothingLabeled",
			observed: []transaction.Signature{sig("Rewe", "einkauf"), sig("Amazon", "bestellung")},
			want:     []transaction.Signature{sig("Amazon", "bestellung"), sig("Rewe", "einkauf")},
		},
		{
			name:     "LabeledRemoved",
			observed: []transaction.Signature{sig("Rewe", "einkauf"), sig("Amazon", "bestellung")},
			labeled:  []transaction.Signature{sig("Rewe", "einkauf")},
			want:     []transaction.Signature{sig("Amazon", "bestellung")},
		},
		{
			name:     "DuplicatesCollapsed",
			observed: []transaction.Signature{sig("Rewe", "einkauf"), sig("Rewe", "einkauf")},
			want:     []transaction.Signature{sig("Rewe", "einkauf")},
		},
		{
			name:     "OrderedByPurposeWithinReceiver",
			observed: []transaction.Signature{sig("Rewe", "zahlung"), sig("Rewe", "einkauf")},
			want:     []transaction.Signature{sig("Rewe", "einkauf"), sig("Rewe", "zahlung")},
		},
		{
			name:     "AllLabeled",
			observed: []transaction.Signature{sig("Rewe", "einkauf")},
			labeled:  []transaction.Signature{sig("Rewe", "einkauf"), sig("Lidl", "einkauf")},
		},
		{
			name: "DifferentFieldIsDifferentParticipant",
			observed: []transaction.Signature{
				sig("Rewe", "einkauf"),
				{SenderBankName: "Volksbank", SenderIBAN: "DE89370400440532013000", ReceiverName: "Rewe", BookingText: "Gutschrift", PurposeSignature: "einkauf"},
			},
			labeled: []transaction.Signature{sig("Rewe", "einkauf")},
			want: []transaction.Signature{
				{SenderBankName: "Volksbank", SenderIBAN: "DE89370400440532013000", ReceiverName: "Rewe", BookingText: "Gutschrift", PurposeSignature: "einkauf"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labeling.Pending(tt.observed, tt.labeled))
		})
	}
}
