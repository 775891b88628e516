package spec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// SolverConfig tunes a solver: how many accepting paths it enumerates when
// extracting solutions before reporting the result as capped, which
// variables the dropping solver must never drop (e.g. key bits a caller
// wants reported rather than eliminated), and whether dependencies are first
// grouped by the set of BDDs they involve, keeping only the cheapest group,
// before the minimum-distance dependency is chosen.
type SolverConfig struct {
	EnumerationCap  int   `yaml:"enumeration_cap"`
	ForbidDropping  []int `yaml:"forbid_dropping"`
	PatternGrouping bool  `yaml:"pattern_grouping"`
}

// DefaultSolverConfig returns the configuration a caller gets without a
// tuning file: a 20-path enumeration cap, nothing forbidden from dropping,
// and pattern grouping enabled.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		EnumerationCap:  20,
		ForbidDropping:  nil,
		PatternGrouping: true,
	}
}

// LoadSolverConfig reads a YAML-encoded SolverConfig from r. Fields absent
// from the document keep DefaultSolverConfig's values.
func LoadSolverConfig(r io.Reader) (SolverConfig, error) {
	cfg := DefaultSolverConfig()
	data, err := io.ReadAll(r)
	if err != nil {
		return SolverConfig{}, fmt.Errorf("LoadSolverConfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SolverConfig{}, fmt.Errorf("LoadSolverConfig: %w", err)
	}
	return cfg, nil
}
