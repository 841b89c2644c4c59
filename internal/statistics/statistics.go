package statistics

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/ledger"
)

// DefaultIgnored lists level-3 categories left out of monthly sums.
// They move money between own accounts.
var DefaultIgnored = []string{"Umlagerungen"}

type DailyBalance struct {
	Date time.Time       `json:"date"`
	Min  decimal.Decimal `json:"min_balance"`
	Mean decimal.Decimal `json:"mean_balance"`
	Max  decimal.Decimal `json:"max_balance"`
}

type MonthlyCategory struct {
	YearMonth   string            `json:"year_month"`
	Category    category.Category `json:"category"`
	Amount      decimal.Decimal   `json:"amount"`
	MeanBalance decimal.Decimal   `json:"mean_balance"`
}

type MonthlyTotal struct {
	YearMonth string `json:"year_month"`
	Amount    int64  `json:"amount"`
}

// Report holds the statistics of one sender account.
type Report struct {
	Account string            `json:"account"`
	Daily   []DailyBalance    `json:"daily"`
	Monthly []MonthlyCategory `json:"monthly"`
	Totals  []MonthlyTotal    `json:"totals"`
}

// Build computes one report per sender IBAN, ordered by IBAN.
func Build(entries []*ledger.Entry, ignored []string) []Report {
	byAccount := make(map[string][]*ledger.Entry)
	for _, e := range entries {
		byAccount[e.Transaction.SenderIBAN] = append(byAccount[e.Transaction.SenderIBAN], e)
	}

	accounts := make([]string, 0, len(byAccount))
	for a := range byAccount {
		accounts = append(accounts, a)
	}

	slices.Sort(accounts)

	reports := make([]Report, 0, len(accounts))

	for _, a := range accounts {
		monthly, totals := Monthly(byAccount[a], ignored)
		reports = append(reports, Report{
			Account: a,
			Daily:   DailyBalances(byAccount[a]),
			Monthly: monthly,
			Totals:  totals,
		})
	}

	return reports
}

// DailyBalances aggregates the balance after booking per booking date.
func DailyBalances(entries []*ledger.Entry) []DailyBalance {
	type acc struct {
		min, max, sum decimal.Decimal
		n             int64
	}

	byDate := make(map[time.Time]*acc)

	for _, e := range entries {
		d := e.Transaction.BookingDate
		b := e.Transaction.BalanceAfterBooking

		a, ok := byDate[d]
		if !ok {
			byDate[d] = &acc{min: b, max: b, sum: b, n: 1}
			continue
		}

		a.min = decimal.Min(a.min, b)
		a.max = decimal.Max(a.max, b)
		a.sum = a.sum.Add(b)
		a.n++
	}

	out := make([]DailyBalance, 0, len(byDate))
	for d, a := range byDate {
		out = append(out, DailyBalance{
			Date: d,
			Min:  a.min,
			Mean: a.sum.Div(decimal.NewFromInt(a.n)),
			Max:  a.max,
		})
	}

	slices.SortFunc(out, func(a, b DailyBalance) int {
		return a.Date.Compare(b.Date)
	})

	return out
}

// Monthly sums amounts and averages balances per month and category,
// skipping entries whose level-3 category is ignored. Totals add up the
// month's amounts and drop the fraction.
func Monthly(entries []*ledger.Entry, ignored []string) ([]MonthlyCategory, []MonthlyTotal) {
	type key struct {
		yearMonth  string
		categoryID int
	}

	type acc struct {
		cat        category.Category
		amount     decimal.Decimal
		balanceSum decimal.Decimal
		n          int64
	}

	groups := make(map[key]*acc)
	sums := make(map[string]decimal.Decimal)

	for _, e := range entries {
		if slices.Contains(ignored, e.Category.Level3) {
			continue
		}

		ym := e.Transaction.BookingDate.Format("2006-01")
		k := key{yearMonth: ym, categoryID: e.Category.ID}

		a, ok := groups[k]
		if !ok {
			a = &acc{cat: e.Category}
			groups[k] = a
		}

		a.amount = a.amount.Add(e.Transaction.Amount)
		a.balanceSum = a.balanceSum.Add(e.Transaction.BalanceAfterBooking)
		a.n++

		sums[ym] = sums[ym].Add(e.Transaction.Amount)
	}

	monthly := make([]MonthlyCategory, 0, len(groups))
	for k, a := range groups {
		monthly = append(monthly, MonthlyCategory{
			YearMonth:   k.yearMonth,
			Category:    a.cat,
			Amount:      a.amount,
			MeanBalance: a.balanceSum.Div(decimal.NewFromInt(a.n)),
		})
	}

	slices.SortFunc(monthly, func(a, b MonthlyCategory) int {
		if c := cmp.Compare(a.YearMonth, b.YearMonth); c != 0 {
			return c
		}

		return cmp.Compare(a.Category.ID, b.Category.ID)
	})

	totals := make([]MonthlyTotal, 0, len(sums))
	for ym, sum := range sums {
		totals = append(totals, MonthlyTotal{YearMonth: ym, Amount: sum.IntPart()})
	}

	slices.SortFunc(totals, func(a, b MonthlyTotal) int {
		return cmp.Compare(a.YearMonth, b.YearMonth)
	})

	return monthly, totals
}
