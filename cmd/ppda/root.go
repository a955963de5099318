package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ppda/internal/cli"
	"github.com/aretw0/ppda/internal/config"
	"github.com/aretw0/ppda/internal/logging"
	"github.com/spf13/cobra"
)

// env is created before every command runs and closed afterwards.
var env *cli.Environment

var rootCmd = &cobra.Command{
	Use:   "ppda",
	Short: "ppda scores and samples strings with probabilistic pushdown automata",
	Long: `ppda runs deterministic probabilistic pushdown automata over exact rational weights.
It computes the probability of a string, samples strings reproducibly from a seed
and serves both operations over HTTP or MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}

		env, err = cli.NewEnvironment(cfg, logging.New(level))
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if env == nil {
			return nil
		}
		return env.Close()
	},
}

// loadConfig reads the config file and applies the persistent flags that
// were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	overrides := map[string]any{}
	if cmd.Flags().Changed("log-level") {
		overrides["log_level"], _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("seed") {
		overrides["seed"], _ = cmd.Flags().GetInt64("seed")
	}
	if len(overrides) == 0 {
		return cfg, nil
	}
	if err := config.Decode(overrides, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, cfg.Validate()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64("seed", 42, "Seed for the model random source")
}
