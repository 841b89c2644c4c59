package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymap/internal/importer"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

const export = "Bezeichnung Auftragskonto;IBAN Auftragskonto;BIC Auftragskonto;Bankname Auftragskonto;" +
	"Buchungstag;Valutadatum;Name Zahlungsbeteiligter;IBAN Zahlungsbeteiligter;" +
	"BIC (SWIFT-Code) Zahlungsbeteiligter;Buchungstext;Verwendungszweck;Betrag;Waehrung;" +
	"Saldo nach Buchung;Bemerkung;Kategorie;Steuerrelevant;Glaeubiger ID;Mandatsreferenz\n" +
	"Girokonto;DE89370400440532013000;COBADEFFXXX;Volksbank;05.03.2023;05.03.2023;Shop;;;" +
	"Kartenzahlung;Einkauf;-12,50;EUR;100,00;;;;;\n"

func TestService_Import(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantExt  string
		wantLen  int
	}{
		{name: "CSV", filename: "export.csv", wantLen: 1},
		{name: "UpperCaseExtension", filename: "EXPORT.CSV", wantLen: 1},
		{name: "Excel", filename: "export.xlsx", wantExt: ".xlsx"},
		{name: "NoExtension", filename: "export", wantExt: ""},
	}

	svc := importer.NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := svc.Import(tt.filename, strings.NewReader(export))

			if tt.wantLen == 0 {
				var formatErr *transaction.UnsupportedFormatError
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, tt.wantExt, formatErr.Ext)

				return
			}

			require.NoError(t, err)
			assert.Len(t, txs, tt.wantLen)
		})
	}
}
