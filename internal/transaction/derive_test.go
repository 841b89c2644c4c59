package transaction_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

func TestDeriveID(t *testing.T) {
	type args struct {
		iban    string
		date    time.Time
		balance string
		purpose string
	}

	type testCase struct {
		name string
		args args
		want string
	}

	tests := []testCase{
		{
			name: "Standard",
			args: args{
				iban:    "DE89370400440532013000",
				date:    time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC),
				balance: "1234.56",
				purpose: "Miete Maerz 2023",
			},
			want: "0532013000_05032023_1234_Miete Ma",
		},
		{
			name: "NegativeBalanceTruncatesTowardZero",
			args: args{
				iban:    "DE89370400440532013000",
				date:    time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC),
				balance: "-99.99",
				purpose: "Geschenk",
			},
			want: "0532013000_24122023_-99_Geschenk",
		},
		{
			name: "ShortInputsUsedWhole",
			args: args{
				iban:    "AT12",
				date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				balance: "0.4",
				purpose: "Zins",
			},
			want: "AT12_01012024_0_Zins",
		},
		{
			name: "PrefixCountsRunes",
			args: args{
				iban:    "DE89370400440532013000",
				date:    time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC),
				balance: "10",
				purpose: "Überweisung",
			},
			want: "0532013000_09022024_10_Überweis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transaction.DeriveID(tt.args.iban, tt.args.date, decimal.RequireFromString(tt.args.balance), tt.args.purpose)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveID_CollidesOnSameInputs(t *testing.T) {
	date := time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC)

	a := transaction.DeriveID("DE89370400440532013000", date, decimal.RequireFromString("500.10"), "Kartenzahlung REWE")
	b := transaction.DeriveID("XX00000000000532013000", date, decimal.RequireFromString("500.99"), "KartenzaXYZ")

	assert.Equal(t, a, b)
}

func TestPurposeSignature(t *testing.T) {
	assert.Equal(t, "miete  whg b", transaction.PurposeSignature("Miete 2023, Whg. 4B!"))
	assert.Equal(t, "rewe sagt danke ", transaction.PurposeSignature("REWE SAGT DANKE 4711"))
	assert.Equal(t, "", transaction.PurposeSignature("2023-01-01/42"))
	assert.Equal(t, "gebhr", transaction.PurposeSignature("Gebühr"))
}

func TestSignature_Compare(t *testing.T) {
	a := transaction.Signature{ReceiverName: "Alpha", PurposeSignature: "z"}
	b := transaction.Signature{ReceiverName: "Beta", PurposeSignature: "a"}
	c := transaction.Signature{ReceiverName: "Alpha", PurposeSignature: "z", BookingText: "LASTSCHRIFT"}
	upper := transaction.Signature{ReceiverName: "Zeta"}
	lower := transaction.Signature{ReceiverName: "alpha"}

	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Negative(t, a.Compare(c))
	assert.Zero(t, a.Compare(a))
	assert.Negative(t, upper.Compare(lower), "byte order puts upper case first")
}
