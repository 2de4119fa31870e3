package app

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/finwatch/kursziel/internal/config"
)

func testConfig(jsonLog bool) *config.Config {
	return &config.Config{
		LogLevel:     "error",
		JSONLog:      jsonLog,
		HTTPTimeout:  5 * time.Second,
		UserAgent:    "TestAgent/1.0",
		RequestDelay: 0,
		Keyword:      "kursziel",
		SheetName:    "Kursziele_Input",
		URLColumn:    "Url",
	}
}

// captureGlobalLog initializes the app with cfg, emits one line through
// the package-level zerolog logger and returns what arrived on stderr.
func captureGlobalLog(t *testing.T, cfg *config.Config) string {
	t.Helper()

	origStderr := os.Stderr
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		os.Stderr = origStderr
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w

	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Error().Msg("marker line")

	_ = a.Close(context.Background())
	w.Close()
	os.Stderr = origStderr

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured log: %v", err)
	}
	return string(data)
}

func TestNew_JSONModeRoutesGlobalLogger(t *testing.T) {
	out := captureGlobalLog(t, testConfig(true))

	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q (%v)", line, err)
	}
	if entry["message"] != "marker line" {
		t.Errorf("message = %v, want marker line", entry["message"])
	}
}

func TestNew_ConsoleModeIsNotJSON(t *testing.T) {
	out := captureGlobalLog(t, testConfig(false))

	if !strings.Contains(out, "marker line") {
		t.Fatalf("marker line missing from console output: %q", out)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		t.Errorf("console mode emitted raw JSON: %q", line)
	}
}
