package cmd

import (
	"github.com/spf13/cobra"
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write <out.avro>",
	Short: "Build a container file from a schema and CSV data",
	Long: `Encode each line of a comma separated data file against a JSON record
schema and write the records to a new Avro object container file. An existing
file at the output path is replaced.

Fields are matched to values by position. Use "null" for the null branch of a
nullable field. Lines the container rejects are logged and skipped.

Examples:
  avrotool write out.avro --schema schema.json --data data.csv
  avrotool write out.avro -m schema.json -d data.csv --codec deflate`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := runnerFrom(cmd)
		if err != nil {
			return err
		}

		cfg := runner.Config()
		if cmd.Flags().Changed("codec") {
			cfg.Writer.Codec, _ = cmd.Flags().GetString("codec")
		}
		if cmd.Flags().Changed("run-metadata") {
			cfg.Writer.RunMetadata, _ = cmd.Flags().GetBool("run-metadata")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		schemaPath, _ := cmd.Flags().GetString("schema")
		dataPath, _ := cmd.Flags().GetString("data")
		_, err = runner.Write(args[0], schemaPath, dataPath)
		return err
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringP("schema", "m", "", "JSON schema file (required)")
	writeCmd.Flags().StringP("data", "d", "", "Comma separated data file (required)")
	writeCmd.Flags().String("codec", "", "Block compression: null, deflate or snappy")
	writeCmd.Flags().Bool("run-metadata", true, "Store a run identifier in the file metadata")
	_ = writeCmd.MarkFlagRequired("schema")
	_ = writeCmd.MarkFlagRequired("data")
}
