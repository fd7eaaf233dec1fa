package evaluation

import (
	"fmt"
	"io"
	"os"

	"github.com/okian/concierge/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging initializes the console logger. When logFile is set, output is
// also appended to that file.
func SetupLogging(logFile, level string) error {
	var out io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	if err := logger.Init(
		logger.WithLevel(level),
		logger.WithFormat(logger.FormatConsole),
		logger.WithOutput(out),
	); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// ShowHelp prints usage information for the evaluation tool.
func ShowHelp() {
	os.Stdout.WriteString(`Concierge Evaluation Tool
=========================

Runs YAML scenarios through the orchestration engine, checks expectations and
verifies that every output is byte-identical across two runs.

Usage:
  go run ./cmd/concierge-eval [options]

Options:
  -scenarios string
        YAML scenario file (default "scenarios.yaml")
  -workers int
        Number of concurrent workers (default CPU cores)
  -timeout duration
        Overall run timeout (default 1m)
  -events int
        Event cap passed to the engine (default 12)
  -destinations int
        Destination cap passed to the engine (default 14)
  -output string
        Write the produced outputs as JSON to this file
  -log string
        Also append log output to this file
  -log-level string
        Log level: debug, info, warn, error (default "info")
  -verbose
        Log every passing scenario
  -help
        Show this help message

Scenario file:
  scenarios:
    - name: jazz night
      input:
        now: "2025-01-01T12:00:00Z"
        session: {discovery_focus: live_music}
        sections: [...]
      expect:
        top_event_ids: ["1"]
        itinerary_ids: [event-1, dest-7]
        session: {mode: safe}

Exit status is non-zero when any scenario fails.
`)
}
