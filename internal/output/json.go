package output

import (
	"encoding/json"
	"os"

	"github.com/finwatch/kursziel/pkg/models"
)

// SaveJSON writes the result table as a JSON document with the column
// order preserved next to the row objects.
func SaveJSON(rt *models.ResultTable, filepath string) error {
	doc := struct {
		Columns []string         `json:"columns"`
		Rows    []map[string]any `json:"rows"`
	}{
		Columns: rt.Columns,
		Rows:    rt.Rows,
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath, content, 0644)
}
