package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Raw is one bank-statement line as stored in the transactions table.
// Optional fields use the empty string for "not set".
type Raw struct {
	ID                  string
	SenderAccountType   string
	SenderIBAN          string
	SenderBIC           string
	SenderBankName      string
	ReceiverName        string
	ReceiverIBAN        string
	ReceiverBIC         string
	BookingDate         time.Time
	ValueDate           time.Time // zero when the export left it blank
	Amount              decimal.Decimal
	Currency            string
	BookingText         string
	Purpose             string
	PurposeSignature    string
	BalanceAfterBooking decimal.Decimal
	Notes               string
	DefaultCategory     string
	TaxRelevant         string
	CreditorID          string
	MandateReference    string
}

// Signature identifies a recurring sender/receiver/purpose pattern.
// A label assigned to a signature applies to every transaction sharing it.
type Signature struct {
	SenderBankName   string
	SenderIBAN       string
	ReceiverName     string
	ReceiverIBAN     string
	BookingText      string
	PurposeSignature string
}

// Signature returns the participant signature of the transaction.
func (r *Raw) Signature() Signature {
	return Signature{
		SenderBankName:   r.SenderBankName,
		SenderIBAN:       r.SenderIBAN,
		ReceiverName:     r.ReceiverName,
		ReceiverIBAN:     r.ReceiverIBAN,
		BookingText:      r.BookingText,
		PurposeSignature: r.PurposeSignature,
	}
}

// Compare orders signatures by receiver name and purpose signature first,
// then by the remaining fields so the order is total. Strings compare bytewise.
func (s Signature) Compare(o Signature) int {
	a := [...]string{s.ReceiverName, s.PurposeSignature, s.SenderBankName, s.SenderIBAN, s.ReceiverIBAN, s.BookingText}
	b := [...]string{o.ReceiverName, o.PurposeSignature, o.SenderBankName, o.SenderIBAN, o.ReceiverIBAN, o.BookingText}

	for i := range a {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}
