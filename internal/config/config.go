package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// HTTP/Fetching
	HTTPTimeout time.Duration
	UserAgent   string

	// Pacing between outbound requests
	RequestDelay time.Duration

	// Extraction
	Keyword string

	// Input workbook
	SheetName string
	URLColumn string
}

// Load builds a Config by combining defaults, environment variables, and CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:     DefaultLogLevel,
		JSONLog:      DefaultJSONLog,
		HTTPTimeout:  DefaultHTTPTimeout,
		UserAgent:    DefaultUserAgent,
		RequestDelay: DefaultRequestDelay,
		Keyword:      DefaultKeyword,
		SheetName:    DefaultSheetName,
		URLColumn:    DefaultURLColumn,
	}

	// Override from environment variables (simple helpers)
	if v := os.Getenv("KURSZIEL_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("KURSZIEL_KEYWORD"); v != "" {
		cfg.Keyword = v
	}
	if v := os.Getenv("KURSZIEL_SHEET"); v != "" {
		cfg.SheetName = v
	}

	// Read CLI flags if provided
	if cmd != nil {
		if f := cmd.Flags().Lookup("user-agent"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.UserAgent = s
			}
		}
		if f := cmd.Flags().Lookup("timeout"); f != nil {
			if s := f.Value.String(); s != "" {
				if d, err := time.ParseDuration(s); err == nil {
					cfg.HTTPTimeout = d
				}
			}
		}
		if f := cmd.Flags().Lookup("delay"); f != nil {
			if s := f.Value.String(); s != "" {
				if d, err := time.ParseDuration(s); err == nil {
					cfg.RequestDelay = d
				}
			}
		}
		if f := cmd.Flags().Lookup("keyword"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.Keyword = s
			}
		}
		if f := cmd.Flags().Lookup("sheet"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.SheetName = s
			}
		}
		if f := cmd.Flags().Lookup("url-column"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.URLColumn = s
			}
		}
		if f := cmd.Flags().Lookup("json"); f != nil {
			if f.Value.String() == "true" {
				cfg.JSONLog = true
			}
		}
		if f := cmd.Flags().Lookup("verbose"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "debug"
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
