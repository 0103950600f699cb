package riskstats

import (
	"fmt"

	"github.com/mwiater/riskstats/internal/report"
	"github.com/mwiater/riskstats/internal/stats"
	"github.com/spf13/cobra"
)

const exampleSystemName = "Example LLM System"

// exampleCmd prints the report for a fixed six-record batch.
var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print the statistical report for a built-in example batch",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := report.Generate(stats.ExampleResults(), exampleSystemName)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
