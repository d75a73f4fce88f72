package cmd

import (
	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema <file.avro>",
	Short: "Print the writer schema of a container file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := runnerFrom(cmd)
		if err != nil {
			return err
		}
		_, err = runner.Read(args[0], true)
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
