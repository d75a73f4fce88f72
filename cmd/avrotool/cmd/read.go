package cmd

import (
	"github.com/spf13/cobra"
)

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read <file.avro>",
	Short: "Print the schema and records of a container file",
	Long: `Print the writer schema of an Avro object container file followed by one
line per record. Fields are rendered in schema order and joined by the
configured separator.

Examples:
  avrotool read data.avro
  avrotool read data.avro --count 10
  avrotool read data.avro --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := runnerFrom(cmd)
		if err != nil {
			return err
		}

		cfg := runner.Config()
		if cmd.Flags().Changed("count") {
			cfg.Output.Count, _ = cmd.Flags().GetUint64("count")
		}
		if cmd.Flags().Changed("format") {
			cfg.Output.Format, _ = cmd.Flags().GetString("format")
		}
		if cmd.Flags().Changed("separator") {
			cfg.Output.Separator, _ = cmd.Flags().GetString("separator")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		schemaOnly, _ := cmd.Flags().GetBool("schema-only")
		_, err = runner.Read(args[0], schemaOnly)
		return err
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().Uint64P("count", "c", 0, "Print at most this many records (0 prints all)")
	readCmd.Flags().String("format", "", "Record format: lines or json")
	readCmd.Flags().String("separator", "", "Field separator for the lines format")
	readCmd.Flags().Bool("schema-only", false, "Print the schema and stop")
}
