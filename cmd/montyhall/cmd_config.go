package main

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/montyhall/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect montyhall configuration",
		Long: `View the effective configuration of a run.

Settings come from the built-in study parameters, optionally replaced by
a YAML file given with --config, then by MONTYHALL_LOG_LEVEL and
MONTYHALL_SEED from the environment.

Examples:
  montyhall config list
  montyhall config list --config study.yaml
  montyhall config validate --config study.yaml`,
	}

	cmd.AddCommand(
		newConfigListCmd(),
		newConfigValidateCmd(),
	)

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration (%s):\n\n", valueOrDefault(configPath, "built-in defaults"))
			fmt.Fprint(cmd.OutOrStdout(), string(data))

			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration without running",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"status": "valid",
					"rows":   cfg.Simulation.Params().RowCount(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid (%d result rows)\n", cfg.Simulation.Params().RowCount())
			return nil
		},
	}
}

// valueOrDefault returns v, or def if v is empty.
func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
