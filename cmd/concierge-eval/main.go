package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/concierge/internal/evaluation"
)

// Default configuration constants.
const (
	defaultScenarios = "scenarios.yaml"
	defaultTimeout   = time.Minute
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		scenarios    = flag.String("scenarios", defaultScenarios, "YAML scenario file")
		workers      = flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers")
		timeout      = flag.Duration("timeout", defaultTimeout, "Overall run timeout")
		events       = flag.Int("events", 0, "Event cap passed to the engine (0 keeps the default)")
		destinations = flag.Int("destinations", 0, "Destination cap passed to the engine (0 keeps the default)")
		outputFile   = flag.String("output", "", "Write the produced outputs as JSON to this file")
		logFile      = flag.String("log", "", "Also append log output to this file")
		logLevel     = flag.String("log-level", "info", "Log level")
		verbose      = flag.Bool("verbose", false, "Log every passing scenario")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		evaluation.ShowHelp()
		return 0
	}

	if err := evaluation.SetupLogging(*logFile, *logLevel); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	config := &evaluation.Config{
		ScenariosFile:    *scenarios,
		Workers:          *workers,
		Timeout:          *timeout,
		EventLimit:       *events,
		DestinationLimit: *destinations,
		OutputFile:       *outputFile,
		LogFile:          *logFile,
		Verbose:          *verbose,
	}

	if err := evaluation.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Evaluation failed: " + err.Error() + "\n")
		return 1
	}
	return 0
}
