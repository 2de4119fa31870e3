// internal/cli/run.go
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/finwatch/kursziel/internal/config"
	"github.com/finwatch/kursziel/internal/output"
	"github.com/finwatch/kursziel/internal/runner"
	"github.com/finwatch/kursziel/internal/ui"
	"github.com/finwatch/kursziel/internal/xlsx"
	"github.com/finwatch/kursziel/pkg/models"
)

// runCmd is the explicit spelling of the bare root invocation.
var runCmd = &cobra.Command{
	Use:   "run [input.xlsx]",
	Short: "Process a workbook of page addresses",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (.xlsx, .csv or .json; default derives from input)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	a := GetApp()
	cfg := a.Config

	var inputPath string
	if len(args) > 0 {
		inputPath = strings.TrimSpace(args[0])
	} else {
		p, err := promptInputPath()
		if err != nil {
			return err
		}
		inputPath = p
	}
	if inputPath == "" {
		return fmt.Errorf("no input file given")
	}

	sheet, err := xlsx.ReadInput(inputPath, cfg.SheetName, cfg.URLColumn)
	if err != nil {
		// Input problems abort the batch; nothing was fetched yet.
		return &runner.PipelineError{Code: runner.ErrCodeFileNotFound, Source: inputPath, Underlying: err}
	}
	fmt.Printf("%s %d input rows read from %s\n", ui.Success("✓"), len(sheet.Rows), inputPath)

	result, err := a.Runner.Run(cmd.Context(), sheet)
	if err != nil {
		// Only cancellation surfaces here; per-row failures are logged and skipped.
		return err
	}

	if result.Len() == 0 {
		fmt.Println(ui.Info("No rows extracted, nothing to write"))
		return nil
	}

	outPath := outputPath
	if outPath == "" {
		outPath = xlsx.DeriveOutputPath(inputPath, config.DefaultOutputSuffix)
	}
	if err := saveResult(result, outPath); err != nil {
		return fmt.Errorf("save result: %w", err)
	}

	log.Info().Str("path", outPath).Int("rows", result.Len()).Msg("Result saved")
	fmt.Printf("%s %d rows saved to %s\n", ui.Success("✓"), result.Len(), outPath)
	return nil
}

// saveResult picks the export format from the output path suffix;
// anything unrecognized is written as a workbook.
func saveResult(rt *models.ResultTable, path string) error {
	switch {
	case strings.HasSuffix(path, ".csv"):
		return output.SaveCSV(rt, path)
	case strings.HasSuffix(path, ".json"):
		return output.SaveJSON(rt, path)
	default:
		return xlsx.WriteResult(path, config.DefaultOutputSheet, rt)
	}
}

// promptInputPath asks for the workbook path on stdin when no
// positional argument was given.
func promptInputPath() (string, error) {
	fmt.Print("Path to input workbook: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", fmt.Errorf("read input path: %w", err)
	}
	return line, nil
}
