package transaction

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	idIBANSuffixLen    = 10
	idPurposePrefixLen = 8
)

var nonLetters = regexp.MustCompile(`[^a-zA-Z\s]`)

// DeriveID builds the transaction id from the last ten runes of the sender
// IBAN, the booking date (DDMMYYYY), the balance truncated toward zero and the
// first eight runes of the purpose. Distinct postings sharing all four inputs
// collide on purpose: the id is the deduplication key.
func DeriveID(senderIBAN string, bookingDate time.Time, balance decimal.Decimal, purpose string) string {
	return lastRunes(senderIBAN, idIBANSuffixLen) + "_" +
		bookingDate.Format("02012006") + "_" +
		balance.Truncate(0).String() + "_" +
		firstRunes(purpose, idPurposePrefixLen)
}

// PurposeSignature strips everything but ASCII letters and whitespace from
// the purpose and lowercases the rest.
func PurposeSignature(purpose string) string {
	return strings.ToLower(nonLetters.ReplaceAllString(purpose, ""))
}

func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[len(r)-n:])
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
