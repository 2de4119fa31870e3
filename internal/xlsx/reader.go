// internal/xlsx/reader.go
package xlsx

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/finwatch/kursziel/pkg/models"
)

// ReadInput loads the input workbook sheet. The first row is the
// header; the named URL column must be present. Rows whose URL cell is
// empty after trimming are dropped, every other column is carried as
// pass-through metadata.
func ReadInput(path, sheetName, urlColumn string) (*models.InputSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	header := make([]string, len(rows[0]))
	urlIdx := -1
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
		if header[i] == urlColumn {
			urlIdx = i
		}
	}
	if urlIdx < 0 {
		return nil, fmt.Errorf("column %q not found in sheet %q", urlColumn, sheetName)
	}

	sheet := &models.InputSheet{
		Columns:   header,
		URLColumn: urlColumn,
	}

	for _, raw := range rows[1:] {
		var pageURL string
		if urlIdx < len(raw) {
			pageURL = strings.TrimSpace(raw[urlIdx])
		}
		if pageURL == "" {
			continue
		}

		meta := make(map[string]string, len(header)-1)
		for i, name := range header {
			if i == urlIdx || name == "" {
				continue
			}
			var v string
			if i < len(raw) {
				v = raw[i]
			}
			meta[name] = v
		}

		sheet.Rows = append(sheet.Rows, models.InputRow{URL: pageURL, Meta: meta})
	}

	log.Debug().
		Str("path", path).
		Str("sheet", sheetName).
		Int("rows", len(sheet.Rows)).
		Msg("Input workbook read")

	return sheet, nil
}
