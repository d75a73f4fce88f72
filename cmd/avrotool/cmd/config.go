package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/avrotool/pkg/config"
)

// configCmd groups configuration file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the avrotool configuration file",
	// Config commands must work when the current file is missing or broken.
	PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	Long: `Write a configuration file holding the default values.

Examples:
  avrotool config init
  avrotool config init --config ./avrotool.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		force, _ := cmd.Flags().GetBool("force")
		if config.ConfigExists(configPath) && !force {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
		}

		if err := config.SaveConfig(config.DefaultConfig(), configPath); err != nil {
			return err
		}
		cmd.Printf("Config written to %s\n", configPath)
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cmd.Printf("output.separator: %q\n", cfg.Output.Separator)
		cmd.Printf("output.format: %s\n", cfg.Output.Format)
		cmd.Printf("output.count: %d\n", cfg.Output.Count)
		cmd.Printf("writer.codec: %s\n", cfg.Writer.Codec)
		cmd.Printf("writer.run_metadata: %t\n", cfg.Writer.RunMetadata)
		cmd.Printf("logging.level: %s\n", cfg.Logging.Level)
		cmd.Printf("metrics.textfile: %s\n", cfg.Metrics.Textfile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
