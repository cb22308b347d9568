// Package config provides configuration loading for montyhall.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nvandessel/montyhall/internal/constants"
	"github.com/nvandessel/montyhall/internal/experiment"
	"github.com/nvandessel/montyhall/internal/pathutil"
	"gopkg.in/yaml.v3"
)

// MontyConfig contains all montyhall configuration settings.
type MontyConfig struct {
	// Simulation contains the experiment parameters.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Output contains the files a run writes.
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains settings for operational and trace logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig configures the experiment.
type SimulationConfig struct {
	// MaxDoors is the largest door count simulated (minimum 3).
	MaxDoors int `json:"max_doors" yaml:"max_doors"`

	// ThreeDoorTrials is the number of games for the three-door case.
	ThreeDoorTrials int `json:"three_door_trials" yaml:"three_door_trials"`

	// OtherTrials is the number of games for every other door count.
	OtherTrials int `json:"other_trials" yaml:"other_trials"`

	// Seed seeds the random source. 0 picks a fresh seed per run.
	Seed int64 `json:"seed" yaml:"seed"`
}

// Params converts the simulation settings to runner parameters.
func (c SimulationConfig) Params() experiment.Params {
	return experiment.Params{
		MaxDoors:        c.MaxDoors,
		ThreeDoorTrials: c.ThreeDoorTrials,
		OtherTrials:     c.OtherTrials,
	}
}

// OutputConfig configures output files.
type OutputConfig struct {
	// Path is the results table.
	Path string `json:"path" yaml:"path"`

	// TracePath receives per-game JSONL records at trace level.
	TracePath string `json:"trace_path" yaml:"trace_path"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" logs every result row; "trace" additionally records every game.
	Level string `json:"level" yaml:"level"`
}

// Default returns a MontyConfig holding the standard study parameters.
func Default() *MontyConfig {
	return &MontyConfig{
		Simulation: SimulationConfig{
			MaxDoors:        constants.DefaultMaxDoors,
			ThreeDoorTrials: constants.DefaultThreeDoorTrials,
			OtherTrials:     constants.DefaultOtherTrials,
			Seed:            0,
		},
		Output: OutputConfig{
			Path:      constants.DefaultOutputFile,
			TracePath: constants.DefaultTraceFile,
		},
		Logging: LoggingConfig{
			Level: constants.DefaultLogLevel,
		},
	}
}

// Load builds the effective configuration.
// Order: defaults -> path (if non-empty) -> environment variables
func Load(path string) (*MontyConfig, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys missing
// from the file keep their defaults.
func LoadFromFile(path string) (*MontyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *MontyConfig) Validate() error {
	if c.Simulation.MaxDoors < constants.MinDoors {
		return fmt.Errorf("max_doors must be at least %d, got %d", constants.MinDoors, c.Simulation.MaxDoors)
	}

	if c.Simulation.ThreeDoorTrials <= 0 {
		return fmt.Errorf("three_door_trials must be positive, got %d", c.Simulation.ThreeDoorTrials)
	}

	if c.Simulation.OtherTrials <= 0 {
		return fmt.Errorf("other_trials must be positive, got %d", c.Simulation.OtherTrials)
	}

	if err := pathutil.ValidateOutputPath(c.Output.Path); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	if c.Logging.Level == "trace" && c.Output.TracePath == "" {
		return fmt.Errorf("trace_path is required at trace log level")
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *MontyConfig) error {
	if v := os.Getenv("MONTYHALL_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("MONTYHALL_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing MONTYHALL_SEED: %w", err)
		}
		config.Simulation.Seed = seed
	}

	return nil
}
