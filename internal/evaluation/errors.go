package evaluation

import "errors"

// Sentinel error kinds for the evaluation runner.
var (
	ErrLoadScenarios  = errors.New("failed to load scenarios")
	ErrNoScenarios    = errors.New("no scenarios to evaluate")
	ErrScenarioFailed = errors.New("one or more scenarios failed")
)
