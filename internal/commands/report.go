package riskstats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mwiater/riskstats/internal/logging"
	"github.com/mwiater/riskstats/internal/report"
	"github.com/mwiater/riskstats/internal/results"
	"github.com/mwiater/riskstats/internal/stats"
	"github.com/spf13/cobra"
)

const (
	inputFormatOutcomes = "outcomes"
	inputFormatAccuracy = "accuracy"
)

// reportOptions captures the inputs for the report command.
type reportOptions struct {
	InputPath   string
	InputFormat string
	System      string
	Model       string
}

var reportOpts reportOptions

// reportCmd turns a results file into the statistical report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the statistical report for a results file",
	Long: `Read test outcomes (JSONL, one record per line), compute accuracy with a
Wilson confidence interval, false positive/negative rates and prompt-format
brittleness, and print the report. Use --format accuracy to read the JSONL
written by agon accuracy runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(reportOpts, cmd.OutOrStdout())
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOpts.InputPath, "input", "", "Path to the results JSONL file (required)")
	reportCmd.Flags().StringVar(&reportOpts.InputFormat, "format", inputFormatOutcomes, "Input format: outcomes or accuracy")
	reportCmd.Flags().StringVar(&reportOpts.System, "system", "", "System name shown in the report header (overrides systemName)")
	reportCmd.Flags().StringVar(&reportOpts.Model, "model", "", "Only include results produced by this model")
	_ = reportCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(reportCmd)
}

func runReport(opts reportOptions, out io.Writer) error {
	batch, err := loadBatch(opts.InputPath, opts.InputFormat)
	if err != nil {
		return err
	}
	batch = results.FilterModel(batch, opts.Model)

	cfg := GetConfig()
	system := opts.System
	if strings.TrimSpace(system) == "" {
		system = systemName(cfg.SystemName, opts.Model)
	}
	statsOpts := cfg.StatsOptions()
	summary := stats.AnalyzeWith(batch, statsOpts)
	logging.LogAnalysis("report", opts.InputPath, system, summary)

	if cfg.JSONMode {
		return writeJSON(out, summary)
	}

	text, err := report.Render(summary, system, statsOpts.Confidence)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)
	return nil
}

func loadBatch(path, format string) ([]stats.TestResult, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", inputFormatOutcomes:
		return results.LoadOutcomes(path)
	case inputFormatAccuracy:
		return results.LoadAccuracyResults(path)
	default:
		return nil, fmt.Errorf("unknown input format %q (expected %s or %s)", format, inputFormatOutcomes, inputFormatAccuracy)
	}
}

func systemName(configured, model string) string {
	if name := strings.TrimSpace(configured); name != "" {
		return name
	}
	if model = strings.TrimSpace(model); model != "" {
		return model
	}
	return report.DefaultSystemName
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
