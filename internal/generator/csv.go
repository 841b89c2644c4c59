package generator

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymap/internal/importer/rbpn"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

// WriteCSV writes rows as an RBPN account export: German headers,
// DD.MM.YYYY dates and comma decimals.
func WriteCSV(w io.Writer, rows []*transaction.Raw) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	header := make([]string, len(rbpn.Columns))
	for i, c := range rbpn.Columns {
		header[i] = c.Source
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		fields := exportFields(row)

		record := make([]string, len(rbpn.Columns))
		for i, c := range rbpn.Columns {
			record[i] = fields[c.Canonical]
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func exportFields(r *transaction.Raw) map[string]string {
	return map[string]string{
		rbpn.FieldSenderAccountType:   r.SenderAccountType,
		rbpn.FieldSenderIBAN:          r.SenderIBAN,
		rbpn.FieldSenderBIC:           r.SenderBIC,
		rbpn.FieldSenderBankName:      r.SenderBankName,
		rbpn.FieldBookingDate:         germanDate(r.BookingDate),
		rbpn.FieldValueDate:           germanDate(r.ValueDate),
		rbpn.FieldReceiverName:        r.ReceiverName,
		rbpn.FieldReceiverIBAN:        r.ReceiverIBAN,
		rbpn.FieldReceiverBIC:         r.ReceiverBIC,
		rbpn.FieldBookingText:         r.BookingText,
		rbpn.FieldPurpose:             r.Purpose,
		rbpn.FieldAmount:              germanDecimal(r.Amount),
		rbpn.FieldCurrency:            r.Currency,
		rbpn.FieldBalanceAfterBooking: germanDecimal(r.BalanceAfterBooking),
		rbpn.FieldNotes:               r.Notes,
		rbpn.FieldDefaultCategory:     r.DefaultCategory,
		rbpn.FieldTaxRelevant:         r.TaxRelevant,
		rbpn.FieldCreditorID:          r.CreditorID,
		rbpn.FieldMandateReference:    r.MandateReference,
	}
}

func germanDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format("02.01.2006")
}

// germanDecimal formats d with two decimals and a comma separator, no grouping.
func germanDecimal(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
