// internal/runner/runner.go
package runner

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/finwatch/kursziel/internal/extract"
	"github.com/finwatch/kursziel/internal/ratelimit"
	"github.com/finwatch/kursziel/pkg/models"
)

// SourceURLColumn tags every output row with its originating address.
const SourceURLColumn = "Source_URL"

// Fetcher is the page retrieval dependency of the runner.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// Runner drives the extraction pipeline once per input row, strictly
// sequentially: pace, fetch, select table, normalize the matched
// column, merge in the input row's metadata.
type Runner struct {
	fetcher  Fetcher
	pacer    ratelimit.Pacer
	keyword  string
	progress bool
}

// New creates a Runner with dependency injection
func New(fetcher Fetcher, pacer ratelimit.Pacer, keyword string) *Runner {
	return &Runner{
		fetcher: fetcher,
		pacer:   pacer,
		keyword: keyword,
	}
}

// WithProgress enables a terminal progress bar across input rows.
func (r *Runner) WithProgress(on bool) *Runner {
	r.progress = on
	return r
}

// Run processes every input row in order and returns the concatenated
// result. Per-row failures are logged and skipped; the only errors
// returned are context cancellation from the pacer.
func (r *Runner) Run(ctx context.Context, sheet *models.InputSheet) (*models.ResultTable, error) {
	result := &models.ResultTable{}
	metaCols := sheet.MetaColumns()

	var bar *progressbar.ProgressBar
	if r.progress {
		bar = progressbar.Default(int64(len(sheet.Rows)), "extracting")
	}

	processed := 0
	for i, row := range sheet.Rows {
		log.Info().
			Int("row", i+1).
			Int("total", len(sheet.Rows)).
			Str("url", row.URL).
			Msg("Processing input row")

		if err := r.pacer.Wait(ctx); err != nil {
			return result, err
		}

		if err := r.processRow(ctx, row, metaCols, result); err != nil {
			log.Warn().Err(err).Str("url", row.URL).Msg("Row skipped")
		} else {
			processed++
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	log.Info().
		Int("input_rows", len(sheet.Rows)).
		Int("extracted_from", processed).
		Int("output_rows", result.Len()).
		Msg("Batch complete")

	return result, nil
}

// processRow handles one input row end to end.
func (r *Runner) processRow(ctx context.Context, row models.InputRow, metaCols []string, result *models.ResultTable) error {
	doc, err := r.fetcher.Fetch(ctx, row.URL)
	if err != nil {
		return &PipelineError{Code: ErrCodeNetwork, Source: row.URL, Underlying: err}
	}

	table, matchedCol, ok := extract.SelectTable(doc, r.keyword)
	if !ok {
		return &PipelineError{Code: ErrCodeParse, Source: row.URL, Underlying: ErrNoTables}
	}
	if len(table.Rows) == 0 {
		return &PipelineError{Code: ErrCodeParse, Source: row.URL, Underlying: ErrNoTables}
	}

	columns, rows := buildRows(table, matchedCol, row, metaCols)
	result.Append(columns, rows)
	return nil
}

// buildRows turns a parsed table into output rows: the matched column
// normalized cell by cell, Source_URL appended, then the input row's
// metadata. Input metadata overwrites a same-named extracted column.
func buildRows(t *models.Table, matchedCol string, in models.InputRow, metaCols []string) ([]string, []map[string]any) {
	columns := make([]string, 0, len(t.Headers)+1+len(metaCols))
	columns = append(columns, t.Headers...)
	columns = append(columns, SourceURLColumn)
	columns = append(columns, metaCols...)

	matchedIdx := -1
	if matchedCol != "" {
		matchedIdx = t.ColumnIndex(matchedCol)
	}

	rows := make([]map[string]any, 0, len(t.Rows))
	for _, cells := range t.Rows {
		out := make(map[string]any, len(columns))
		for i, h := range t.Headers {
			if i >= len(cells) {
				break
			}
			if i == matchedIdx {
				// Normalization failure leaves the cell absent, the row is kept.
				if v, numOK := extract.Normalize(cells[i]); numOK {
					out[h] = v
				}
				continue
			}
			out[h] = cells[i]
		}
		out[SourceURLColumn] = in.URL
		for _, c := range metaCols {
			out[c] = in.Meta[c]
		}
		rows = append(rows, out)
	}

	return columns, rows
}
