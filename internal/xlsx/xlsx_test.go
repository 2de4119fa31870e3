package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/finwatch/kursziel/pkg/models"
)

func writeInputWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		f.SetSheetName("Sheet1", sheet)
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save test workbook: %v", err)
	}
	return path
}

func TestReadInput(t *testing.T) {
	path := writeInputWorkbook(t, "Kursziele_Input", [][]any{
		{"Url", "WKN", "Bezeichnung"},
		{"https://example.com/a ", "703000", "Rheinmetall AG"},
		{"", "716460", "SAP SE"},
		{"   ", "514000", "Deutsche Bank AG"},
		{"https://example.com/b", "840400", "Allianz SE"},
	})

	sheet, err := ReadInput(path, "Kursziele_Input", "Url")
	if err != nil {
		t.Fatalf("ReadInput failed: %v", err)
	}

	if len(sheet.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 after dropping blank URLs", len(sheet.Rows))
	}
	if sheet.Rows[0].URL != "https://example.com/a" {
		t.Errorf("URL = %q, want trimmed value", sheet.Rows[0].URL)
	}
	if sheet.Rows[0].Meta["WKN"] != "703000" {
		t.Errorf("metadata = %+v", sheet.Rows[0].Meta)
	}

	meta := sheet.MetaColumns()
	if len(meta) != 2 || meta[0] != "WKN" || meta[1] != "Bezeichnung" {
		t.Errorf("MetaColumns = %v", meta)
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "nope.xlsx"), "Kursziele_Input", "Url")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadInput_MissingURLColumn(t *testing.T) {
	path := writeInputWorkbook(t, "Kursziele_Input", [][]any{
		{"Adresse", "WKN"},
		{"https://example.com/a", "703000"},
	})

	_, err := ReadInput(path, "Kursziele_Input", "Url")
	if err == nil {
		t.Fatal("expected error for missing Url column")
	}
}

func TestWriteResult_RoundTrip(t *testing.T) {
	rt := &models.ResultTable{}
	rt.Append(
		[]string{"Institut", "Kursziel", "Source_URL"},
		[]map[string]any{
			{"Institut": "Bank A", "Kursziel": 123.5, "Source_URL": "https://example.com/a"},
			{"Institut": "Bank B", "Source_URL": "https://example.com/a"},
		},
	)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteResult(path, "Kursziele", rt); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Kursziele")
	if err != nil {
		t.Fatalf("read back sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Institut" || rows[0][1] != "Kursziel" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "123.5" {
		t.Errorf("numeric cell read back as %q", rows[1][1])
	}
	// Absent cell stays empty
	if len(rows[2]) > 1 && rows[2][1] != "" {
		t.Errorf("absent cell = %q, want empty", rows[2][1])
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kursziele_Input.xlsx", "Kursziele_Input_kursziele.xlsx"},
		{"data/alt.xls", "data/alt_kursziele.xlsx"},
		{"noext", "noext_kursziele.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := DeriveOutputPath(tt.in, "_kursziele"); got != tt.want {
				t.Errorf("DeriveOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
