package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	automaton "github.com/geange/automaton-tree"
	"github.com/geange/automaton-tree/internal/config"
	"github.com/geange/automaton-tree/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automaton-tree",
	Short: "Build and inspect computation trees of a finite automaton",
	Long: `automaton-tree validates a binary string, builds the tree of every
configuration the automaton can reach while reading it, and reports whether
the string is accepted.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "automaton-tree.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int("max-input-length", -1, "Longest accepted input, 0 for no limit")
}

// environment holds what every command needs.
type environment struct {
	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
	sim    *automaton.Simulator
}

func setup(cmd *cobra.Command) (*environment, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("max-input-length") {
		cfg.Limits.MaxInputLength, _ = cmd.Flags().GetInt("max-input-length")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.New(logging.Options{Level: level, File: cfg.Log.File})
	if err != nil {
		return nil, err
	}

	sim, err := automaton.NewSimulator(
		automaton.WithLogger(logger),
		automaton.WithMaxInputLength(cfg.Limits.MaxInputLength),
		automaton.WithTreeMaxNodes(cfg.Limits.MaxNodes),
	)
	if err != nil {
		closer.Close()
		return nil, err
	}

	return &environment{cfg: cfg, logger: logger, closer: closer, sim: sim}, nil
}
