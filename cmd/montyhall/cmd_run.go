package main

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/montyhall/internal/config"
	"github.com/nvandessel/montyhall/internal/experiment"
	"github.com/nvandessel/montyhall/internal/logging"
	"github.com/nvandessel/montyhall/internal/random"
	"github.com/nvandessel/montyhall/internal/report"
	"github.com/spf13/cobra"
)

// runExperiment plays the full study and writes the results table.
func runExperiment(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	jsonOut, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

	trace, err := logging.NewTraceLogger(cfg.Output.TracePath, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to open trace log: %w", err)
	}
	defer trace.Close()

	rng, seed, err := random.New(cfg.Simulation.Seed)
	if err != nil {
		return fmt.Errorf("failed to seed random source: %w", err)
	}

	params := cfg.Simulation.Params()
	logger.Info("starting experiment",
		"max_doors", params.MaxDoors,
		"three_door_trials", params.ThreeDoorTrials,
		"other_trials", params.OtherTrials,
		"seed", seed,
		"output", cfg.Output.Path)

	runner := experiment.NewRunner(rng, params, logger, trace)

	var summary *experiment.Summary
	err = report.WriteFile(cfg.Output.Path, func(w experiment.RowWriter) error {
		var runErr error
		summary, runErr = runner.Run(w)
		return runErr
	})
	if err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	logger.Info("experiment complete",
		"rows", len(summary.Rows),
		"games", summary.Games,
		"elapsed", summary.Elapsed)
	if trace != nil {
		logger.Log(cmd.Context(), logging.LevelTrace, "game trace written",
			"games", trace.Count(),
			"path", cfg.Output.TracePath)
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return json.NewEncoder(out).Encode(map[string]interface{}{
			"status":  "complete",
			"output":  cfg.Output.Path,
			"seed":    seed,
			"games":   summary.Games,
			"rows":    summary.Rows,
			"elapsed": summary.Elapsed.String(),
		})
	}

	if err := report.Render(out, summary.Rows); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}
	fmt.Fprintf(out, "\nResults written to %s (%d games, seed %d)\n", cfg.Output.Path, summary.Games, seed)

	return nil
}
