package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("json", false, "Emit JSON logs instead of console output")
	cmd.PersistentFlags().String("timeout", "10s", "Hard timeout for each page fetch")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
	cmd.PersistentFlags().String("delay", "1s", "Pause between outbound requests")
	cmd.PersistentFlags().String("keyword", "", "Header keyword that marks the target-price column")
	cmd.PersistentFlags().String("sheet", "", "Input worksheet name")
	cmd.PersistentFlags().String("url-column", "", "Input column holding page addresses")
}
