package genetics

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/kindredlab/kindred/internal/models"
)

//go:embed scenarios.toml
var defaultScenarios []byte

// Scenario is a named consanguinity preset the UI can apply as a
// factor in one click.
type Scenario struct {
	Name         string                  `toml:"name" json:"name"`
	Relationship models.RelationshipType `toml:"relationship" json:"relationship"`
	Tier         models.GenerationTier   `toml:"tier" json:"tier"`
	Description  string                  `toml:"description" json:"description,omitempty"`
}

type scenarioFile struct {
	Scenarios []Scenario `toml:"scenario"`
}

// LoadScenarios parses and validates scenario presets. With an empty
// path the embedded defaults are used; otherwise the TOML file at path
// replaces them entirely. Invalid files fail loading so a bad preset
// can never surface at request time.
func LoadScenarios(path string) ([]Scenario, error) {
	data := defaultScenarios
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading scenarios file: %w", err)
		}
	}

	return parseScenarios(data)
}

func parseScenarios(data []byte) ([]Scenario, error) {
	var file scenarioFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}

	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenarios file defines no scenarios")
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i, sc := range file.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("scenario %q: duplicate name", sc.Name)
		}
		seen[sc.Name] = true

		// Reject anything a factor built from this scenario would reject.
		if _, err := FactorContribution(sc.Relationship, sc.Tier); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}

	return file.Scenarios, nil
}
