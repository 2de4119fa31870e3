package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/finwatch/kursziel/pkg/models"
)

// SaveCSV writes the result table to a CSV file. Returns an error on failure.
func SaveCSV(rt *models.ResultTable, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(rt.Columns); err != nil {
		return err
	}

	for _, row := range rt.Rows {
		record := make([]string, len(rt.Columns))
		for i, name := range rt.Columns {
			if v, ok := row[name]; ok {
				record[i] = formatCell(v)
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatCell renders a cell value for text output
func formatCell(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
