// internal/xlsx/writer.go
package xlsx

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/finwatch/kursziel/pkg/models"
)

// WriteResult writes the result table to a new workbook. The header row
// is the column union; numeric cells keep their float64 type so the
// sheet gets real numbers, not numerals in text.
func WriteResult(path, sheetName string, rt *models.ResultTable) error {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	if sheetName != "" && sheetName != defaultSheet {
		f.SetSheetName(defaultSheet, sheetName)
	} else {
		sheetName = defaultSheet
	}

	for c, name := range rt.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("write header %q: %w", name, err)
		}
	}

	for r, row := range rt.Rows {
		for c, name := range rt.Columns {
			v, ok := row[name]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// DeriveOutputPath builds the default output path from the input path:
// the extension is replaced by suffix + ".xlsx".
func DeriveOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ".xlsx"
}
