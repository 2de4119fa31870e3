// internal/cli/check.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finwatch/kursziel/internal/config"
	"github.com/finwatch/kursziel/internal/extract"
	"github.com/finwatch/kursziel/internal/runner"
	"github.com/finwatch/kursziel/internal/ui"
)

// checkCmd is the standalone diagnostic: it runs the pipeline against a
// single known target-price page and exits non-zero when nothing comes
// back.
var checkCmd = &cobra.Command{
	Use:   "check [url]",
	Short: "Smoke-test extraction against a single target-price page",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a := GetApp()

	pageURL := config.DefaultCheckURL
	if len(args) > 0 {
		pageURL = args[0]
	}
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		return fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	fmt.Printf("Checking %s\n", pageURL)

	doc, err := a.Fetcher.Fetch(cmd.Context(), pageURL)
	if err != nil {
		return &runner.PipelineError{Code: runner.ErrCodeNetwork, Source: pageURL, Underlying: err}
	}

	table, matchedCol, ok := extract.SelectTable(doc, a.Config.Keyword)
	if !ok || len(table.Rows) == 0 {
		return &runner.PipelineError{Code: runner.ErrCodeParse, Source: pageURL, Underlying: runner.ErrNoTables}
	}

	fmt.Printf("%s Table found: %d rows, %d columns\n", ui.Success("✓"), len(table.Rows), len(table.Headers))
	fmt.Printf("  Columns: %s\n", strings.Join(table.Headers, ", "))

	if matchedCol == "" {
		fmt.Println(ui.Info("  No keyword column matched, first table used"))
		return nil
	}

	idx := table.ColumnIndex(matchedCol)
	var values []string
	for _, row := range table.Rows {
		if idx >= len(row) {
			continue
		}
		if v, numOK := extract.Normalize(row[idx]); numOK {
			values = append(values, fmt.Sprintf("%g", v))
		}
	}
	fmt.Printf("%s Column %q: %d numeric values [%s]\n",
		ui.Success("✓"), matchedCol, len(values), strings.Join(values, ", "))
	return nil
}
