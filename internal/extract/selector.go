// internal/extract/selector.go
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/finwatch/kursziel/pkg/models"
	"github.com/rs/zerolog/log"
)

// SelectTable scans the document's tables in order and picks the first
// one whose header contains the keyword (case-insensitive substring).
// The matched column is the first such header entry, returned with its
// original casing. When no table matches, the first parseable table is
// returned with an empty column name. The third return value is false
// when the page has no usable tables at all.
//
// Column identity is decided here once per table; the caller applies it
// to every row.
func SelectTable(doc *goquery.Document, keyword string) (*models.Table, string, bool) {
	kw := strings.ToLower(strings.TrimSpace(keyword))

	tables := doc.Find("table")
	if tables.Length() == 0 {
		log.Info().Msg("No tables found on page")
		return nil, "", false
	}

	var fallback *models.Table
	var matched *models.Table
	var matchedCol string

	tables.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		t := parseTable(sel)
		if t == nil {
			return true
		}
		if fallback == nil {
			fallback = t
		}
		for _, h := range t.Headers {
			if strings.Contains(strings.ToLower(strings.TrimSpace(h)), kw) {
				matched = t
				matchedCol = h
				return false
			}
		}
		return true
	})

	if matched != nil {
		log.Info().
			Str("column", matchedCol).
			Int("rows", len(matched.Rows)).
			Int("columns", len(matched.Headers)).
			Msg("Keyword table found")
		return matched, matchedCol, true
	}

	if fallback == nil {
		log.Info().Msg("Tables present but none parseable")
		return nil, "", false
	}

	log.Info().
		Int("rows", len(fallback.Rows)).
		Int("columns", len(fallback.Headers)).
		Msg("No keyword column found, using first table")
	return fallback, "", true
}
