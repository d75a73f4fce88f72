/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/avrotool/pkg/avrotool"
	"github.com/ssargent/avrotool/pkg/config"
	"github.com/ssargent/avrotool/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

type runnerKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "avrotool",
	Short: "avrotool - read and write Avro object container files",
	Long: `avrotool prints the records of an Avro object container file as text lines
and builds container files from a JSON schema and comma separated data.

Only flat records are understood: int, long, float, double, string, bytes,
boolean, nullable unions of those, and arrays of int or long.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return fmt.Errorf("dependency container not initialized")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		runner := container.NewRunner(avrotool.Options{
			Config: cfg,
			Logger: logger,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})

		// Store in command context
		cmd.SetContext(context.WithValue(cmd.Context(), runnerKey{}, runner))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		runner, err := runnerFrom(cmd)
		if err != nil {
			return err
		}
		return runner.FlushMetrics()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/avrotool/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Dump the parsed schema tree and log at debug level")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this textfile after the run")
}

// loadConfig reads the config file and applies the global flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Debug = true
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.Metrics.Textfile, _ = cmd.Flags().GetString("metrics-file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runnerFrom(cmd *cobra.Command) (*avrotool.Runner, error) {
	runner, ok := cmd.Context().Value(runnerKey{}).(*avrotool.Runner)
	if !ok {
		return nil, fmt.Errorf("runner not initialized")
	}
	return runner, nil
}
