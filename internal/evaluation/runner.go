package evaluation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/okian/concierge/internal/domain/concierge"
	"github.com/okian/concierge/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// File permission constants.
const (
	directoryPermission = 0750
	outputPermission    = 0600
)

// Run executes a complete evaluation. It returns ErrScenarioFailed when any
// scenario is nondeterministic or misses an expectation.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting concierge evaluation",
		logger.String("scenarios", config.ScenariosFile),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Bool("verbose", config.Verbose))

	// Step 1: Load scenarios
	scenarios, err := LoadScenarios(config.ScenariosFile)
	if err != nil {
		return err
	}

	// Step 2: Evaluate concurrently
	results, err := Evaluate(ctx, newEngine(config), scenarios, config.Workers)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	// Step 3: Report
	collectStats(results, stats)
	reportResults(ctx, results, config.Verbose)

	// Step 4: Save outputs
	if config.OutputFile != "" {
		if err := saveResults(ctx, config.OutputFile, results); err != nil {
			logger.Get().Warn(ctx, "failed to save results", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrScenarioFailed, stats.Failed, stats.Scenarios)
	}
	logger.Get().Info(ctx, "evaluation completed successfully")
	return nil
}

func newEngine(config *Config) *concierge.Engine {
	var opts []concierge.Option
	if config.EventLimit > 0 {
		opts = append(opts, concierge.WithEventLimit(config.EventLimit))
	}
	if config.DestinationLimit > 0 {
		opts = append(opts, concierge.WithDestinationLimit(config.DestinationLimit))
	}
	return concierge.New(opts...)
}

// Evaluate runs every scenario twice through the engine using up to workers
// goroutines. Results keep scenario order.
func Evaluate(ctx context.Context, engine *concierge.Engine, scenarios []Scenario, workers int) ([]Result, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := evaluateOne(engine, scenarios[i])
			if err != nil {
				return fmt.Errorf("scenario %q: %w", scenarios[i].Name, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluateOne(engine *concierge.Engine, sc Scenario) (Result, error) {
	first := engine.Orchestrate(sc.Input)
	second := engine.Orchestrate(sc.Input)

	same, err := sameBytes(first, second)
	if err != nil {
		return Result{}, err
	}

	mismatches := verifyExpectations(sc.Expect, first)
	if mismatches == nil {
		mismatches = []string{}
	}
	return Result{
		Name:          sc.Name,
		Deterministic: same,
		Mismatches:    mismatches,
		Output:        first,
	}, nil
}

func collectStats(results []Result, stats *Stats) {
	stats.Scenarios = len(results)
	for _, r := range results {
		if r.Passed() {
			stats.Passed++
		} else {
			stats.Failed++
		}
		stats.Mismatches += len(r.Mismatches)
		if !r.Deterministic {
			stats.Nondeterministic++
		}
	}
}

// reportResults logs every failing scenario, and passing ones when verbose.
func reportResults(ctx context.Context, results []Result, verbose bool) {
	log := logger.Get()
	for _, r := range results {
		switch {
		case !r.Deterministic:
			log.Error(ctx, "output is not byte-identical across runs", logger.String("scenario", r.Name))
		case len(r.Mismatches) > 0:
			for _, m := range r.Mismatches {
				log.Error(ctx, "expectation mismatch", logger.String("scenario", r.Name), logger.String("detail", m))
			}
		case verbose:
			log.Info(ctx, "scenario passed",
				logger.String("scenario", r.Name),
				logger.Any("topEventIds", r.Output.Recommendations.TopEventIDs),
				logger.Any("topDestinationIds", r.Output.Recommendations.TopDestinationIDs))
		}
	}
}

// saveResults writes the results as indented JSON.
func saveResults(ctx context.Context, filename string, results []Result) error {
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(filename, append(data, '\n'), outputPermission); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	logger.Get().Info(ctx, "results saved to file", logger.String("filename", filename))
	return nil
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "final statistics",
		logger.Int("scenarios", stats.Scenarios),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.Int("mismatches", stats.Mismatches),
		logger.Int("nondeterministic", stats.Nondeterministic),
		logger.Duration("duration", stats.Duration))
}
