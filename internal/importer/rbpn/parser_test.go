package rbpn_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/moneymap/internal/importer/rbpn"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

const header = "Bezeichnung Auftragskonto;IBAN Auftragskonto;BIC Auftragskonto;Bankname Auftragskonto;" +
	"Buchungstag;Valutadatum;Name Zahlungsbeteiligter;IBAN Zahlungsbeteiligter;" +
	"BIC (SWIFT-Code) Zahlungsbeteiligter;Buchungstext;Verwendungszweck;Betrag;Waehrung;" +
	"Saldo nach Buchung;Bemerkung;Kategorie;Steuerrelevant;Glaeubiger ID;Mandatsreferenz"

// row builds one data line with the usual constant columns filled in.
func row(bookingDate, valueDate, receiver, purpose, amount, balance string) string {
	return strings.Join([]string{
		"Girokonto", "DE89370400440532013000", "COBADEFFXXX", "Volksbank",
		bookingDate, valueDate, receiver, "DE02120300000000202051", "BYLADEM1001",
		"Lastschrift", purpose, amount, "EUR", balance, "", "", "", "", "",
	}, ";")
}

func csvOf(lines ...string) string {
	return strings.Join(append([]string{header}, lines...), "\n") + "\n"
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Parse(t *testing.T) {
	input := csvOf(
		row("05.03.2023", "06.03.2023", "Hausverwaltung", "Miete Maerz", "-850,00", "1.234,56"),
		row("01.03.2023", "01.03.2023", "Arbeitgeber GmbH", "Gehalt 03/2023", "3.100,25", "2.084,56"),
	)

	txs, err := rbpn.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	first := txs[0]
	assert.Equal(t, "0532013000_05032023_1234_Miete Ma", first.ID)
	assert.Equal(t, date(2023, 3, 5), first.BookingDate)
	assert.Equal(t, date(2023, 3, 6), first.ValueDate)
	assert.True(t, decimal.RequireFromString("-850").Equal(first.Amount))
	assert.True(t, decimal.RequireFromString("1234.56").Equal(first.BalanceAfterBooking))
	assert.Equal(t, "Hausverwaltung", first.ReceiverName)
	assert.Equal(t, "Volksbank", first.SenderBankName)
	assert.Equal(t, "Lastschrift", first.BookingText)
	assert.Equal(t, "EUR", first.Currency)
	assert.Equal(t, "miete maerz", first.PurposeSignature)

	assert.True(t, decimal.RequireFromString("3100.25").Equal(txs[1].Amount))
	assert.Equal(t, "gehalt ", txs[1].PurposeSignature)
}

func TestParser_ISODates(t *testing.T) {
	input := csvOf(row("2023-03-05", "", "Shop", "Einkauf", "-1,00", "10,00"))

	txs, err := rbpn.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, date(2023, 3, 5), txs[0].BookingDate)
	assert.True(t, txs[0].ValueDate.IsZero())
}

func TestParser_DateFormatAppliesToWholeColumn(t *testing.T) {
	input := csvOf(
		row("2023-03-05", "2023-03-05", "Shop", "Einkauf", "-1,00", "10,00"),
		row("06.03.2023", "06.03.2023", "Shop", "Einkauf", "-1,00", "9,00"),
	)

	_, err := rbpn.NewParser().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking_date")
}

func TestParser_MissingColumns(t *testing.T) {
	input := "Buchungstag;Betrag\n05.03.2023;-1,00\n"

	_, err := rbpn.NewParser().Parse(strings.NewReader(input))

	var schemaErr *transaction.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, "Verwendungszweck")
	assert.Contains(t, schemaErr.Missing, "Saldo nach Buchung")
	assert.NotContains(t, schemaErr.Missing, "Buchungstag")
}

func TestParser_EmptyFile(t *testing.T) {
	_, err := rbpn.NewParser().Parse(strings.NewReader(""))

	var schemaErr *transaction.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Len(t, schemaErr.Missing, len(rbpn.Columns))
}

func TestParser_HeaderOnly(t *testing.T) {
	txs, err := rbpn.NewParser().Parse(strings.NewReader(header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParser_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{
			name:  "MissingPurpose",
			line:  row("05.03.2023", "", "Shop", "", "-1,00", "10,00"),
			field: "purpose",
		},
		{
			name:  "MissingBalance",
			line:  row("05.03.2023", "", "Shop", "Einkauf", "-1,00", ""),
			field: "balance_after_booking",
		},
		{
			name:  "MissingBookingDate",
			line:  row("", "", "Shop", "Einkauf", "-1,00", "10,00"),
			field: "booking_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := csvOf(row("04.03.2023", "", "Shop", "Einkauf", "-1,00", "11,00"), tt.line)

			_, err := rbpn.NewParser().Parse(strings.NewReader(input))

			var integrityErr *transaction.DataIntegrityError
			require.ErrorAs(t, err, &integrityErr)
			assert.Equal(t, tt.field, integrityErr.Field)
			assert.Equal(t, 3, integrityErr.Row)
		})
	}
}

func TestParser_DropsExactDuplicates(t *testing.T) {
	line := row("05.03.2023", "", "Shop", "Einkauf", "-1,00", "10,00")
	input := csvOf(line, line, row("05.03.2023", "", "Shop", "Einkauf", "-2,00", "8,00"))

	txs, err := rbpn.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestParser_SkipsBlankRows(t *testing.T) {
	input := csvOf(
		row("05.03.2023", "", "Shop", "Einkauf", "-1,00", "10,00"),
		";;;;;;;;;;;;;;;;;;",
	)

	txs, err := rbpn.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	cols := strings.Split(header, ";")
	cells := strings.Split(row("05.03.2023", "", "Shop", "Einkauf", "-1,00", "10,00"), ";")

	// Swap the first and the last column.
	last := len(cols) - 1
	cols[0], cols[last] = cols[last], cols[0]
	cells[0], cells[last] = cells[last], cells[0]

	input := strings.Join(cols, ";") + "\n" + strings.Join(cells, ";") + "\n"

	txs, err := rbpn.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Girokonto", txs[0].SenderAccountType)
	assert.Equal(t, "Einkauf", txs[0].Purpose)
}

func TestParser_UmlautHeaders(t *testing.T) {
	umlautHeader := strings.NewReplacer("Waehrung", "Währung", "Glaeubiger", "Gläubiger").Replace(header)
	input := umlautHeader + "\n" + row("05.03.2023", "", "Shop", "Einkauf", "-1,00", "10,00") + "\n"

	txs, err := rbpn.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "EUR", txs[0].Currency)
}

func TestParser_Latin1Encoding(t *testing.T) {
	input := csvOf(row("05.03.2023", "", "Bäckerei Müller", "Brötchen", "-3,20", "10,00"))

	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(input))
	require.NoError(t, err)

	txs, err := rbpn.NewParser().Parse(bytes.NewReader(latin1))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "Baeckerei Mueller", txs[0].ReceiverName)
	assert.Equal(t, "Broetchen", txs[0].Purpose)
}

func TestParser_MalformedAmount(t *testing.T) {
	input := csvOf(row("05.03.2023", "", "Shop", "Einkauf", "abc", "10,00"))

	_, err := rbpn.NewParser().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse amount")
}

func TestParser_LargeAmounts(t *testing.T) {
	input := csvOf(row("05.03.2023", "", "Notar", "Kaufpreis", "-1.234.567,89", "12.345.678,90"))

	txs, err := rbpn.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.True(t, decimal.RequireFromString("-1234567.89").Equal(txs[0].Amount))
	assert.Equal(t, "0532013000_05032023_12345678_Kaufprei", txs[0].ID)
}
