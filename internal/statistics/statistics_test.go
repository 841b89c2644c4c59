package statistics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
	"github.com/MrJamesThe3rd/moneymap/internal/statistics"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

func entry(iban string, y, m, d int, amount, balance string, cat category.Category) *ledger.Entry {
	return &ledger.Entry{
		Transaction: transaction.Raw{
			SenderIBAN:          iban,
			BookingDate:         time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC),
			Amount:              decimal.RequireFromString(amount),
			BalanceAfterBooking: decimal.RequireFromString(balance),
		},
		Category: cat,
	}
}

var (
	rent     = category.Category{ID: 1, Level3: "Miete"}
	food     = category.Category{ID: 2, Level3: "Lebensmittel"}
	transfer = category.Category{ID: 3, Level3: "Umlagerungen"}
)

func TestDailyBalances(t *testing.T) {
	entries := []*ledger.Entry{
		entry("A", 2023, 3, 2, "-10", "90", food),
		entry("A", 2023, 3, 1, "-10", "100", food),
		entry("A", 2023, 3, 1, "-10", "110", food),
	}

	got := statistics.DailyBalances(entries)
	require.Len(t, got, 2)

	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.True(t, decimal.NewFromInt(100).Equal(got[0].Min))
	assert.True(t, decimal.NewFromInt(105).Equal(got[0].Mean))
	assert.True(t, decimal.NewFromInt(110).Equal(got[0].Max))

	assert.True(t, decimal.NewFromInt(90).Equal(got[1].Mean))
}

func TestMonthly(t *testing.T) {
	entries := []*ledger.Entry{
		entry("A", 2023, 3, 1, "-850", "1000", rent),
		entry("A", 2023, 3, 5, "-20.50", "980", food),
		entry("A", 2023, 3, 9, "-30.25", "950", food),
		entry("A", 2023, 3, 10, "-500", "450", transfer),
		entry("A", 2023, 4, 1, "-850", "100", rent),
	}

	monthly, totals := statistics.Monthly(entries, statistics.DefaultIgnored)

	require.Len(t, monthly, 3)
	assert.Equal(t, "2023-03", monthly[0].YearMonth)
	assert.Equal(t, rent, monthly[0].Category)
	assert.Equal(t, food, monthly[1].Category)
	assert.True(t, decimal.RequireFromString("-50.75").Equal(monthly[1].Amount))
	assert.True(t, decimal.NewFromInt(965).Equal(monthly[1].MeanBalance))
	assert.Equal(t, "2023-04", monthly[2].YearMonth)

	assert.Equal(t, []statistics.MonthlyTotal{
		{YearMonth: "2023-03", Amount: -900},
		{YearMonth: "2023-04", Amount: -850},
	}, totals)
}

func TestMonthly_NothingIgnored(t *testing.T) {
	entries := []*ledger.Entry{entry("A", 2023, 3, 10, "-500", "450", transfer)}

	monthly, totals := statistics.Monthly(entries, nil)

	require.Len(t, monthly, 1)
	assert.Equal(t, int64(-500), totals[0].Amount)
}

func TestBuild_PerAccount(t *testing.T) {
	entries := []*ledger.Entry{
		entry("DE02", 2023, 3, 1, "-1", "10", food),
		entry("DE01", 2023, 3, 1, "-2", "20", food),
		entry("DE02", 2023, 3, 2, "-3", "7", food),
	}

	reports := statistics.Build(entries, statistics.DefaultIgnored)

	require.Len(t, reports, 2)
	assert.Equal(t, "DE01", reports[0].Account)
	assert.Equal(t, "DE02", reports[1].Account)
	assert.Len(t, reports[1].Daily, 2)
	assert.Equal(t, int64(-4), reports[1].Totals[0].Amount)
}
