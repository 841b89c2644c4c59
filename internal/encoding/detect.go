package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// umlauts spells German umlauts and sharp s in ASCII.
var umlauts = strings.NewReplacer(
	"ü", "ue", "Ü", "Ue",
	"ä", "ae", "Ä", "Ae",
	"ö", "oe", "Ö", "Oe",
	"ß", "ss",
)

// Transliterate replaces German umlauts with their ASCII spelling.
func Transliterate(s string) string {
	return umlauts.Replace(s)
}

// NewUTF8Reader returns a reader that yields the input as UTF-8.
//
// Detection order:
//  1. UTF-8 BOM is stripped and the rest returned as-is
//  2. Valid UTF-8 is returned as-is
//  3. Otherwise the content is treated as a legacy 8-bit export: it is decoded
//     (chardet guess, Windows-1252 fallback) and umlauts are transliterated
//
// The whole input is buffered so that validity is decided on every byte, not
// only on a leading sample.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	raw, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	// 1. Check for BOM.
	raw = bytes.TrimPrefix(raw, bomUTF8)

	// 2. If the content is valid UTF-8, return as-is.
	if utf8.Valid(raw) {
		return bytes.NewReader(raw), nil
	}

	// 3. Legacy 8-bit fallback.
	decoded, _, err := transform.Bytes(legacyDecoder(raw), raw)
	if err != nil {
		return nil, fmt.Errorf("decode legacy encoding: %w", err)
	}

	return strings.NewReader(Transliterate(string(decoded))), nil
}

// legacyDecoder picks a single-byte decoder for content that is not UTF-8.
func legacyDecoder(raw []byte) transform.Transformer {
	sample := raw
	if len(sample) > 4096 {
		sample = sample[:4096]
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err == nil {
		switch result.Charset {
		case "ISO-8859-1", "windows-1252":
			return charmap.Windows1252.NewDecoder()
		case "ISO-8859-9":
			return charmap.ISO8859_9.NewDecoder()
		}
	}

	return charmap.Windows1252.NewDecoder()
}
