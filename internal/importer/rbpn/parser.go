package rbpn

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/moneymap/internal/encoding"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

// Parser reads RBPN account CSV exports and produces normalized transactions.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// record holds the trimmed cells of one data row keyed by canonical field.
type record struct {
	line   int
	fields map[string]string
}

func (r record) get(field string) string {
	return r.fields[field]
}

func (p *Parser) Parse(r io.Reader) ([]*transaction.Raw, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	records := collectRecords(cols, rows)

	bookingDates, err := parseDateColumn(records, FieldBookingDate)
	if err != nil {
		return nil, err
	}

	valueDates, err := parseDateColumn(records, FieldValueDate)
	if err != nil {
		return nil, err
	}

	txs := make([]*transaction.Raw, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, rec := range records {
		if err := checkRequired(rec); err != nil {
			return nil, err
		}

		tx, err := buildTransaction(rec, bookingDates[i], valueDates[i])
		if err != nil {
			return nil, err
		}

		key := rowKey(rec)
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		txs = append(txs, tx)
	}

	return txs, nil
}

// colIndex maps canonical field names to their index in the row.
type colIndex map[string]int

// mapHeader resolves every required source column to its position. Header
// cells are matched in their transliterated spelling, so "Währung" and
// "Waehrung" both resolve.
func mapHeader(header []string) (colIndex, error) {
	positions := make(map[string]int, len(header))
	for i, cell := range header {
		name := enc.Transliterate(strings.TrimSpace(cell))
		if name != "" {
			positions[name] = i
		}
	}

	cols := make(colIndex, len(Columns))

	var missing []string

	for _, c := range Columns {
		idx, ok := positions[c.Source]
		if !ok {
			missing = append(missing, c.Source)
			continue
		}

		cols[c.Canonical] = idx
	}

	if len(missing) > 0 {
		return nil, &transaction.SchemaError{Missing: missing}
	}

	return cols, nil
}

// collectRecords converts data rows to records, dropping rows whose cells are all blank.
func collectRecords(cols colIndex, rows [][]string) []record {
	var records []record

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}

		fields := make(map[string]string, len(cols))
		for name, idx := range cols {
			fields[name] = cellValue(row, idx)
		}

		records = append(records, record{line: i + 1, fields: fields})
	}

	return records
}

// parseDateColumn parses one date field for all records. Each layout is tried
// against the whole column; the first layout that fits every non-empty cell wins.
// Empty cells yield the zero time.
func parseDateColumn(records []record, field string) ([]time.Time, error) {
	var lastErr error

	for _, layout := range dateLayouts {
		dates, err := parseDatesWith(records, field, layout)
		if err == nil {
			return dates, nil
		}

		lastErr = err
	}

	return nil, fmt.Errorf("parse %s: %w", field, lastErr)
}

func parseDatesWith(records []record, field, layout string) ([]time.Time, error) {
	dates := make([]time.Time, len(records))

	for i, rec := range records {
		s := rec.get(field)
		if s == "" {
			continue
		}

		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rec.line, err)
		}

		dates[i] = t
	}

	return dates, nil
}

func checkRequired(rec record) error {
	for _, field := range requiredNonEmpty {
		if rec.get(field) == "" {
			return &transaction.DataIntegrityError{Row: rec.line, Field: field}
		}
	}

	return nil
}

func buildTransaction(rec record, bookingDate, valueDate time.Time) (*transaction.Raw, error) {
	amount, err := parseGermanDecimal(rec.get(FieldAmount))
	if err != nil {
		return nil, fmt.Errorf("row %d: parse amount %q: %w", rec.line, rec.get(FieldAmount), err)
	}

	balance, err := parseGermanDecimal(rec.get(FieldBalanceAfterBooking))
	if err != nil {
		return nil, fmt.Errorf("row %d: parse balance %q: %w", rec.line, rec.get(FieldBalanceAfterBooking), err)
	}

	purpose := rec.get(FieldPurpose)
	senderIBAN := rec.get(FieldSenderIBAN)

	return &transaction.Raw{
		ID:                  transaction.DeriveID(senderIBAN, bookingDate, balance, purpose),
		SenderAccountType:   rec.get(FieldSenderAccountType),
		SenderIBAN:          senderIBAN,
		SenderBIC:           rec.get(FieldSenderBIC),
		SenderBankName:      rec.get(FieldSenderBankName),
		ReceiverName:        rec.get(FieldReceiverName),
		ReceiverIBAN:        rec.get(FieldReceiverIBAN),
		ReceiverBIC:         rec.get(FieldReceiverBIC),
		BookingDate:         bookingDate,
		ValueDate:           valueDate,
		Amount:              amount,
		Currency:            rec.get(FieldCurrency),
		BookingText:         rec.get(FieldBookingText),
		Purpose:             purpose,
		PurposeSignature:    transaction.PurposeSignature(purpose),
		BalanceAfterBooking: balance,
		Notes:               rec.get(FieldNotes),
		DefaultCategory:     rec.get(FieldDefaultCategory),
		TaxRelevant:         rec.get(FieldTaxRelevant),
		CreditorID:          rec.get(FieldCreditorID),
		MandateReference:    rec.get(FieldMandateReference),
	}, nil
}

// rowKey identifies exact-duplicate rows across all mapped columns.
func rowKey(rec record) string {
	parts := make([]string, len(Columns))
	for i, c := range Columns {
		parts[i] = rec.get(c.Canonical)
	}

	return strings.Join(parts, "\x1f")
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
