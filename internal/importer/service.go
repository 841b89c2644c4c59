package importer

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/moneymap/internal/importer/rbpn"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

type Service struct {
	importers map[Format]Importer
}

func NewService() *Service {
	return &Service{
		importers: map[Format]Importer{
			FormatRBPN: rbpn.NewParser(),
		},
	}
}

// Import picks the parser for filename's extension and normalizes r.
func (s *Service) Import(filename string, r io.Reader) ([]*transaction.Raw, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	importer, ok := s.importers[Format(ext)]
	if !ok {
		return nil, &transaction.UnsupportedFormatError{Ext: ext}
	}

	return importer.Parse(r)
}
