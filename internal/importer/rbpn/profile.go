package rbpn

// Column maps one header of the RBPN export to its canonical field name.
type Column struct {
	Source    string
	Canonical string
}

// Canonical field names.
const (
	FieldSenderAccountType   = "sender_account_type"
	FieldSenderIBAN          = "sender_iban"
	FieldSenderBIC           = "sender_bic"
	FieldSenderBankName      = "sender_bank_name"
	FieldBookingDate         = "booking_date"
	FieldValueDate           = "value_date"
	FieldReceiverName        = "receiver_name"
	FieldReceiverIBAN        = "receiver_iban"
	FieldReceiverBIC         = "receiver_bic"
	FieldBookingText         = "booking_text"
	FieldPurpose             = "purpose"
	FieldAmount              = "amount"
	FieldCurrency            = "currency"
	FieldBalanceAfterBooking = "balance_after_booking"
	FieldNotes               = "notes"
	FieldDefaultCategory     = "default_category"
	FieldTaxRelevant         = "tax_relevant"
	FieldCreditorID          = "creditor_id"
	FieldMandateReference    = "mandate_reference"
)

// Columns is the fixed header layout of an RBPN account export. Every column
// must be present; order in the file does not matter.
var Columns = []Column{
	{Source: "Bezeichnung Auftragskonto", Canonical: FieldSenderAccountType},
	{Source: "IBAN Auftragskonto", Canonical: FieldSenderIBAN},
	{Source: "BIC Auftragskonto", Canonical: FieldSenderBIC},
	{Source: "Bankname Auftragskonto", Canonical: FieldSenderBankName},
	{Source: "Buchungstag", Canonical: FieldBookingDate},
	{Source: "Valutadatum", Canonical: FieldValueDate},
	{Source: "Name Zahlungsbeteiligter", Canonical: FieldReceiverName},
	{Source: "IBAN Zahlungsbeteiligter", Canonical: FieldReceiverIBAN},
	{Source: "BIC (SWIFT-Code) Zahlungsbeteiligter", Canonical: FieldReceiverBIC},
	{Source: "Buchungstext", Canonical: FieldBookingText},
	{Source: "Verwendungszweck", Canonical: FieldPurpose},
	{Source: "Betrag", Canonical: FieldAmount},
	{Source: "Waehrung", Canonical: FieldCurrency},
	{Source: "Saldo nach Buchung", Canonical: FieldBalanceAfterBooking},
	{Source: "Bemerkung", Canonical: FieldNotes},
	{Source: "Kategorie", Canonical: FieldDefaultCategory},
	{Source: "Steuerrelevant", Canonical: FieldTaxRelevant},
	{Source: "Glaeubiger ID", Canonical: FieldCreditorID},
	{Source: "Mandatsreferenz", Canonical: FieldMandateReference},
}

// requiredNonEmpty lists the fields the transaction id is derived from.
var requiredNonEmpty = []string{
	FieldBookingDate,
	FieldSenderIBAN,
	FieldBalanceAfterBooking,
	FieldPurpose,
}

// Date layouts tried per column, in order.
var dateLayouts = []string{"2006-01-02", "02.01.2006"}
