package riskstats

import (
	"fmt"
	"io"

	"github.com/mwiater/riskstats/internal/logging"
	"github.com/mwiater/riskstats/internal/results"
	"github.com/mwiater/riskstats/internal/stats"
	"github.com/spf13/cobra"
)

var bimodalInput string

// bimodalCmd flags samples that split into two separated clusters.
var bimodalCmd = &cobra.Command{
	Use:   "bimodal",
	Short: "Check a numeric sample for two separated clusters",
	Long: `Split a JSON array of numbers at its median and report the gap between the
halves as a share of the full range. This is a heuristic, not a dip test.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBimodal(bimodalInput, cmd.OutOrStdout())
	},
}

func init() {
	bimodalCmd.Flags().StringVar(&bimodalInput, "input", "", "Path to the sample (JSON array, required)")
	_ = bimodalCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(bimodalCmd)
}

func runBimodal(path string, out io.Writer) error {
	values, err := results.LoadSamples(path)
	if err != nil {
		return err
	}

	cfg := GetConfig()
	res := stats.DetectBimodal(values, cfg.GapThresholdValue())
	logging.LogAnalysis("bimodal", path, "", res)

	if cfg.JSONMode {
		return writeJSON(out, res)
	}

	fmt.Fprintf(out, "Bimodal:     %t\n", res.Bimodal)
	if res.Reason != "" {
		fmt.Fprintf(out, "Reason:      %s\n", res.Reason)
		return nil
	}
	fmt.Fprintf(out, "Gap ratio:   %.4f (threshold %.2f)\n", res.GapRatio, res.Threshold)
	fmt.Fprintf(out, "Lower mean:  %.4f\n", res.LowerClusterMean)
	fmt.Fprintf(out, "Upper mean:  %.4f\n", res.UpperClusterMean)
	return nil
}
