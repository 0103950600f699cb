package riskstats

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mwiater/riskstats/internal/logging"
	"github.com/mwiater/riskstats/internal/metrics"
	"github.com/spf13/cobra"
)

var modelsOpts reportOptions

// modelsCmd prints one summary row per model found in a results file.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Summarize a results file per model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModels(modelsOpts, cmd.OutOrStdout())
	},
}

func init() {
	modelsCmd.Flags().StringVar(&modelsOpts.InputPath, "input", "", "Path to the results JSONL file (required)")
	modelsCmd.Flags().StringVar(&modelsOpts.InputFormat, "format", inputFormatOutcomes, "Input format: outcomes or accuracy")
	_ = modelsCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(modelsCmd)
}

func runModels(opts reportOptions, out io.Writer) error {
	batch, err := loadBatch(opts.InputPath, opts.InputFormat)
	if err != nil {
		return err
	}

	cfg := GetConfig()
	breakdown := metrics.BreakdownByModel(batch, cfg.StatsOptions())
	logging.LogAnalysis("models", opts.InputPath, "", breakdown)

	if cfg.JSONMode {
		return writeJSON(out, breakdown)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Model\tN\tAccuracy\tCI\tFPR\tFNR\tBrittleness\tLatency ms\n")
	fmt.Fprintf(w, "-----\t-\t--------\t--\t---\t---\t-----------\t----------\n")
	for _, m := range breakdown {
		s := m.Summary
		latency := "-"
		if m.Latency.Count > 0 {
			latency = fmt.Sprintf("%.0f ± %.0f", m.Latency.Mean, m.Latency.StdDev())
		}
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\t[%.1f%%, %.1f%%]\t%.1f%%\t%.1f%%\t%.1fpp\t%s\n",
			m.Model, s.N, s.Accuracy*100, s.CILower*100, s.CIUpper*100,
			s.FalsePositiveRate*100, s.FalseNegativeRate*100, s.BrittlenessScore, latency)
	}
	return w.Flush()
}
