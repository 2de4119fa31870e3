// internal/extract/table.go
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/finwatch/kursziel/pkg/models"
	"golang.org/x/net/html"
)

// parseTable converts one <table> selection into a grid. The header row
// comes from an explicit <thead> when present, otherwise from the first
// <tr>. Returns nil for tables with neither headers nor data rows.
func parseTable(sel *goquery.Selection) *models.Table {
	t := &models.Table{}

	thead := sel.Find("thead").First()
	if thead.Length() > 0 {
		thead.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			t.Headers = append(t.Headers, cellText(cell))
		})
		sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			if tr.Closest("thead").Length() > 0 {
				return
			}
			t.Rows = append(t.Rows, rowCells(tr))
		})
	} else {
		sel.Find("tr").Each(func(i int, tr *goquery.Selection) {
			if i == 0 {
				t.Headers = rowCells(tr)
				return
			}
			t.Rows = append(t.Rows, rowCells(tr))
		})
	}

	if len(t.Headers) == 0 && len(t.Rows) == 0 {
		return nil
	}
	return t
}

// rowCells extracts the cell texts of one table row in column order.
func rowCells(tr *goquery.Selection) []string {
	var cells []string
	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, cellText(cell))
	})
	return cells
}

// cellText collects the text content of a cell's node tree, trimmed.
func cellText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		collectText(n, &b)
	}
	return strings.TrimSpace(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
