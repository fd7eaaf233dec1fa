package evaluation

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type scenarioFile struct {
	Scenarios []Scenario `json:"scenarios"`
}

// LoadScenarios reads and parses a scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadScenarios, err)
	}
	return ParseScenarios(data)
}

// ParseScenarios decodes a YAML scenario document. The document is
// re-encoded as JSON so inputs decode exactly like API request bodies.
func ParseScenarios(data []byte) ([]Scenario, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadScenarios, err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadScenarios, err)
	}

	var file scenarioFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadScenarios, err)
	}
	if len(file.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	for i := range file.Scenarios {
		if file.Scenarios[i].Name == "" {
			file.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
	return file.Scenarios, nil
}
