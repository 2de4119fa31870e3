// internal/extract/normalize.go
package extract

import (
	"strconv"
	"strings"
)

// currencyReplacer strips currency markers and spacing before numeric parsing.
var currencyReplacer = strings.NewReplacer(
	"€", "",
	"EUR", "",
	"USD", "",
	" ", "",
	" ", "",
)

// Normalize converts a raw table-cell string into a numeric value.
// Currency markers and spacing are stripped, then the text is read as a
// European-formatted numeral: every "." is a thousands separator and
// every "," the decimal separator. The second return value is false
// when the cell is empty or not numeric.
//
// The European rule is applied unconditionally, so "1,234" parses to
// 1.234 rather than 1234. Known limitation, kept on purpose.
func Normalize(raw string) (float64, bool) {
	txt := strings.TrimSpace(raw)
	if txt == "" {
		return 0, false
	}

	stripped := currencyReplacer.Replace(txt)
	norm := strings.ReplaceAll(stripped, ".", "")
	norm = strings.ReplaceAll(norm, ",", ".")

	v, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
