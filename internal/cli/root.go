// internal/cli/root.go
package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finwatch/kursziel/internal/app"
	"github.com/finwatch/kursziel/internal/config"
)

var outputPath string

// rootCmd is the single batch entry point: it reads the input workbook,
// fetches every listed page and writes the combined result.
var rootCmd = &cobra.Command{
	Use:   "kursziel [input.xlsx]",
	Short: "Extract analyst target-price tables from pages listed in a workbook",
	Long: `Kursziel reads page addresses from a workbook sheet, fetches each page,
locates the target-price table by header keyword, normalizes the price
column and writes the combined rows back to a spreadsheet.`,
	Example: `  # Process a workbook (prompts for the path when omitted)
  kursziel Kursziele_Input.xlsx

  # Same thing via the explicit subcommand
  kursziel run Kursziele_Input.xlsx

  # Write CSV instead of xlsx
  kursziel Kursziele_Input.xlsx -o kursziele.csv

  # Smoke-test a single page
  kursziel check https://www.finanzen.net/kursziele/703000`,
	Version: "0.1.0",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runBatch,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Initialize the application before running commands (not for -h/help)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetApp() != nil {
			return nil
		}

		cfg, err := config.Load(rootCmd)
		if err != nil {
			return err
		}

		appCtx, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		SetApp(appCtx)
		return nil
	}

	// Ensure app is closed after command runs
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		appCtx := GetApp()
		if appCtx == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = appCtx.Close(ctx)
		SetApp(nil)
	}
}

func init() {
	// Register centralized flags
	config.RegisterFlags(rootCmd)

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (.xlsx, .csv or .json; default derives from input)")

	// Disable the default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
