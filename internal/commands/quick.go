package riskstats

import (
	"fmt"

	"github.com/mwiater/riskstats/internal/report"
	"github.com/mwiater/riskstats/internal/stats"
	"github.com/spf13/cobra"
)

var (
	quickExpected []string
	quickActual   []string
	quickFormats  []string
)

// quickCmd analyzes parallel label lists given on the command line.
var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Analyze comma-separated expected/actual label lists",
	Example: `  riskstats quick --expected YES,NO,YES --actual YES,YES,YES
  riskstats quick --expected YES,NO --actual YES,NO --formats natural,json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var formats []string
		if cmd.Flags().Changed("formats") {
			formats = quickFormats
		}
		cfg := GetConfig()
		statsOpts := cfg.StatsOptions()
		summary, err := stats.QuickAnalyzeWith(quickExpected, quickActual, formats, statsOpts)
		if err != nil {
			return err
		}

		if cfg.JSONMode {
			return writeJSON(cmd.OutOrStdout(), summary)
		}
		text, err := report.Render(summary, systemName(cfg.SystemName, ""), statsOpts.Confidence)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	quickCmd.Flags().StringSliceVar(&quickExpected, "expected", nil, "Expected labels, comma-separated")
	quickCmd.Flags().StringSliceVar(&quickActual, "actual", nil, "Actual labels, comma-separated")
	quickCmd.Flags().StringSliceVar(&quickFormats, "formats", nil, "Prompt format per record, comma-separated")
	_ = quickCmd.MarkFlagRequired("expected")
	_ = quickCmd.MarkFlagRequired("actual")

	rootCmd.AddCommand(quickCmd)
}
