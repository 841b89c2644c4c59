package importer

import (
	"io"

	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

// Format identifies a statement export layout by file extension.
type Format string

const (
	FormatRBPN Format = ".csv"
)

type Importer interface {
	Parse(r io.Reader) ([]*transaction.Raw, error)
}
