package generator_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymap/internal/generator"
	"github.com/MrJamesThe3rd/moneymap/internal/importer/rbpn"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

func params() generator.Params {
	p := generator.DefaultParams()
	p.Start = time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	p.End = time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	p.Senders = 2
	p.Receivers = 20

	return p
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := generator.New(42).Generate(params())
	require.NoError(t, err)

	b, err := generator.New(42).Generate(params())
	require.NoError(t, err)

	assert.Equal(t, a, b)

	c, err := generator.New(43).Generate(params())
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerate_RunningBalance(t *testing.T) {
	p := params()

	rows, err := generator.New(7).Generate(p)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	balance := p.StartBalance
	for i, row := range rows {
		balance = balance.Add(row.Amount)
		assert.True(t, balance.Equal(row.BalanceAfterBooking), "row %d", i)

		if i > 0 {
			assert.False(t, row.BookingDate.Before(rows[i-1].BookingDate), "row %d out of order", i)
		}
	}
}

func TestGenerate_Rows(t *testing.T) {
	p := params()

	rows, err := generator.New(7).Generate(p)
	require.NoError(t, err)

	monthly := 0

	for _, row := range rows {
		assert.Equal(t, "EUR", row.Currency)
		assert.NotEmpty(t, row.Purpose)
		assert.Equal(t, row.BookingDate, row.ValueDate)
		assert.True(t, row.Amount.Equal(row.Amount.Round(2)))

		if row.Amount.IsPositive() {
			assert.Contains(t, generator.IncomeBookingTexts, row.BookingText)
		} else {
			assert.Contains(t, generator.ExpenseBookingTexts, row.BookingText)
		}

		for _, text := range generator.MonthlyBookingTexts {
			if row.BookingText == text {
				monthly++
				assert.LessOrEqual(t, row.BookingDate.Day(), 28)
			}
		}
	}

	// Monthly rows repeat once per month start from Feb to Jun.
	assert.Zero(t, monthly%5)
	assert.GreaterOrEqual(t, len(rows), p.Senders*p.Receivers)
}

func TestGenerate_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *generator.Params)
	}{
		{name: "EndBeforeStart", modify: func(p *generator.Params) { p.End = p.Start.AddDate(0, 0, -1) }},
		{name: "NoSenders", modify: func(p *generator.Params) { p.Senders = 0 }},
		{name: "NoSamples", modify: func(p *generator.Params) { p.Samples = 0 }},
		{name: "RatioAboveOne", modify: func(p *generator.Params) { p.ExpenseRatio = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params()
			tt.modify(&p)

			_, err := generator.New(1).Generate(p)
			assert.Error(t, err)
		})
	}
}

func TestWriteCSV_Format(t *testing.T) {
	rows := []*transaction.Raw{{
		SenderAccountType:   "Girokonto",
		SenderIBAN:          "DE89370400440532013000",
		SenderBankName:      "RBPN",
		BookingDate:         time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC),
		ValueDate:           time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC),
		ReceiverName:        "Hausverwaltung",
		BookingText:         "DAUERAUFTRAG",
		Purpose:             "Miete Maerz",
		Amount:              decimal.RequireFromString("-850"),
		Currency:            "EUR",
		BalanceAfterBooking: decimal.RequireFromString("1234.5"),
	}}

	var buf bytes.Buffer
	require.NoError(t, generator.WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Bezeichnung Auftragskonto;IBAN Auftragskonto;"))
	assert.Equal(t,
		"Girokonto;DE89370400440532013000;;RBPN;05.03.2023;05.03.2023;Hausverwaltung;;;DAUERAUFTRAG;Miete Maerz;-850,00;EUR;1234,50;;;;;",
		lines[1])
}

func TestWriteCSV_RoundTripsThroughParser(t *testing.T) {
	rows, err := generator.New(3).Generate(params())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, generator.WriteCSV(&buf, rows))

	parsed, err := rbpn.NewParser().Parse(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, len(rows))

	for i := range rows {
		assert.Equal(t, rows[i].SenderIBAN, parsed[i].SenderIBAN)
		assert.Equal(t, rows[i].BookingDate, parsed[i].BookingDate)
		assert.True(t, rows[i].Amount.Equal(parsed[i].Amount), "row %d", i)
		assert.True(t, rows[i].BalanceAfterBooking.Equal(parsed[i].BalanceAfterBooking), "row %d", i)
		assert.NotEmpty(t, parsed[i].ID)
	}
}
