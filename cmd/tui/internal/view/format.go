package view

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders an amount with two decimals and its currency.
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}

	return amount.StringFixed(2) + " " + currency
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format(time.DateOnly)
}

// FormatCategory joins the three category levels of a leaf.
func FormatCategory(c category.Category) string {
	return fmt.Sprintf("%s / %s / %s", c.Level1, c.Level2, c.Level3)
}

// FormatSignature renders the fields a label is assigned to, one per line.
func FormatSignature(s transaction.Signature) string {
	return fmt.Sprintf(
		"Bank:     %s\nAccount:  %s\nReceiver: %s\nIBAN:     %s\nText:     %s\nPurpose:  %s",
		s.SenderBankName, s.SenderIBAN, s.ReceiverName, s.ReceiverIBAN, s.BookingText, s.PurposeSignature,
	)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
