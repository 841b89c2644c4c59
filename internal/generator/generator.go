package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

var (
	IncomeBookingTexts  = []string{"GUTSCHRIFT", "EINZAHLUNG", "LOHN/GEHALT"}
	ExpenseBookingTexts = []string{
		"LASTSCHRIFT", "SEPA-UEBERWEISUNG", "DAUERAUFTRAG", "Kartenzahlung girocard",
		"Aufladung Mobilfunkguthaben", "Auszahlung girocard", "Kartenzahlung V PAY", "ABSCHLUSS",
	}
	MonthlyBookingTexts = []string{"DAUERAUFTRAG", "ABSCHLUSS", "LOHN/GEHALT"}
	SenderAccountTypes  = []string{"Girokonto"}
	SenderBankNames     = []string{"RBPN"}
)

// Latest booking day used for monthly repeats, valid in every month.
const maxMonthlyDay = 28

type Params struct {
	Start        time.Time
	End          time.Time
	Senders      int
	Receivers    int
	StartBalance decimal.Decimal
	// Samples is the size of the amount pool rows draw from.
	Samples int
	// ExpenseRatio is the share of negative amounts in the pool.
	ExpenseRatio float64
}

func DefaultParams() Params {
	return Params{
		Start:        time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		Senders:      1,
		Receivers:    50,
		StartBalance: decimal.NewFromInt(5000),
		Samples:      1000,
		ExpenseRatio: 0.9,
	}
}

func (p Params) validate() error {
	if p.End.Before(p.Start) {
		return errors.New("end date before start date")
	}

	if p.Senders <= 0 || p.Receivers <= 0 {
		return errors.New("senders and receivers must be positive")
	}

	if p.Samples <= 0 {
		return errors.New("samples must be positive")
	}

	if p.ExpenseRatio < 0 || p.ExpenseRatio > 1 {
		return fmt.Errorf("expense ratio %v outside [0, 1]", p.ExpenseRatio)
	}

	return nil
}

// Generator produces synthetic RBPN statements. Output is fully determined by the seed.
type Generator struct {
	fake *gofakeit.Faker
	rng  *rand.Rand
}

func New(seed uint64) *Generator {
	return &Generator{
		fake: gofakeit.New(seed),
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate builds senders x receivers random postings, repeats the monthly
// ones once per month and fills in the running balance.
func (g *Generator) Generate(p Params) ([]*transaction.Raw, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}

	amounts := g.amountPool(p.Samples, p.ExpenseRatio)
	start, end := dateOnly(p.Start), dateOnly(p.End)

	var rows []*transaction.Raw

	for range p.Senders {
		sender := g.sender()

		for range p.Receivers {
			row := sender
			g.fillReceiver(&row)

			row.BookingDate = g.dateBetween(start, end)
			row.ValueDate = row.BookingDate
			row.Purpose = g.fake.LoremIpsumSentence(g.rng.IntN(6) + 3)
			row.Amount = amounts[g.rng.IntN(len(amounts))]
			row.Currency = "EUR"

			if row.Amount.IsPositive() {
				row.BookingText = pick(g.rng, IncomeBookingTexts)
			} else {
				row.BookingText = pick(g.rng, ExpenseBookingTexts)
			}

			rows = append(rows, &row)
		}
	}

	rows = repeatMonthly(rows, start, end)
	addBalance(rows, p.StartBalance)

	return rows, nil
}

// amountPool draws expenses from -|N(-150, 150)| and incomes from |N(2500, 500)|,
// rounded to cents.
func (g *Generator) amountPool(samples int, expenseRatio float64) []decimal.Decimal {
	expenses := int(float64(samples) * expenseRatio)
	incomes := int(float64(samples)*(1-expenseRatio) + 1)

	pool := make([]decimal.Decimal, 0, expenses+incomes)

	for range expenses {
		v := -math.Abs(g.gauss(-150, 150))
		pool = append(pool, decimal.NewFromFloat(v).Round(2))
	}

	for range incomes {
		v := math.Abs(g.gauss(2500, 500))
		pool = append(pool, decimal.NewFromFloat(v).Round(2))
	}

	return pool
}

func (g *Generator) gauss(mean, stddev float64) float64 {
	return g.rng.NormFloat64()*stddev + mean
}

func (g *Generator) sender() transaction.Raw {
	return transaction.Raw{
		SenderAccountType: pick(g.rng, SenderAccountTypes),
		SenderIBAN:        g.iban(),
		SenderBIC:         g.bban(),
		SenderBankName:    pick(g.rng, SenderBankNames),
	}
}

func (g *Generator) fillReceiver(row *transaction.Raw) {
	if g.rng.IntN(2) == 0 {
		row.ReceiverName = g.fake.Name()
	} else {
		row.ReceiverName = g.fake.Company()
	}

	row.ReceiverIBAN = g.iban()
	row.ReceiverBIC = g.bban()
}

func (g *Generator) iban() string {
	return g.fake.Numerify("DE####################")
}

func (g *Generator) bban() string {
	return g.fake.Numerify("##################")
}

func (g *Generator) dateBetween(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.rng.IntN(days+1))
}

// repeatMonthly keeps the non-monthly rows in order and appends, for every
// monthly row, one copy per month start in [start, end] on the same day of
// month clamped to 28.
func repeatMonthly(rows []*transaction.Raw, start, end time.Time) []*transaction.Raw {
	months := monthStarts(start, end)

	var others, repeated []*transaction.Raw

	for _, row := range rows {
		if !slices.Contains(MonthlyBookingTexts, row.BookingText) {
			others = append(others, row)
			continue
		}

		day := min(row.BookingDate.Day(), maxMonthlyDay)

		for _, m := range months {
			cp := *row
			cp.BookingDate = time.Date(m.Year(), m.Month(), day, 0, 0, 0, 0, time.UTC)
			cp.ValueDate = cp.BookingDate
			repeated = append(repeated, &cp)
		}
	}

	return append(others, repeated...)
}

func monthStarts(start, end time.Time) []time.Time {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	if first.Before(start) {
		first = first.AddDate(0, 1, 0)
	}

	var out []time.Time
	for m := first; !m.After(end); m = m.AddDate(0, 1, 0) {
		out = append(out, m)
	}

	return out
}

// addBalance sorts rows by booking date, keeping ties in order, and sets the
// running balance.
func addBalance(rows []*transaction.Raw, startBalance decimal.Decimal) {
	slices.SortStableFunc(rows, func(a, b *transaction.Raw) int {
		return a.BookingDate.Compare(b.BookingDate)
	})

	balance := startBalance
	for _, row := range rows {
		balance = balance.Add(row.Amount)
		row.BalanceAfterBooking = balance
	}
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.IntN(len(pool))]
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
