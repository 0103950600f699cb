package riskstats

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/riskstats/internal/logging"
	"github.com/mwiater/riskstats/internal/results"
	"github.com/mwiater/riskstats/internal/stats"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type compareOptions struct {
	PathA    string
	PathB    string
	TestType string
}

var compareOpts compareOptions

// compareCmd runs a two-sample significance test on numeric samples.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run a two-sample significance test with effect size",
	Long: `Load two JSON arrays of numbers (for example per-run accuracies of two
prompt variants) and run Welch's t-test or the Mann-Whitney U test. Cohen's d
is always reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(compareOpts, cmd.OutOrStdout())
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareOpts.PathA, "a", "", "Path to the first sample (JSON array, required)")
	compareCmd.Flags().StringVar(&compareOpts.PathB, "b", "", "Path to the second sample (JSON array, required)")
	compareCmd.Flags().StringVar(&compareOpts.TestType, "test", "", "Test type: ttest or mannwhitney (defaults to config testType)")
	_ = compareCmd.MarkFlagRequired("a")
	_ = compareCmd.MarkFlagRequired("b")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(opts compareOptions, out io.Writer) error {
	cfg := GetConfig()
	testName := strings.TrimSpace(opts.TestType)
	if testName == "" {
		testName = cfg.TestTypeName()
	}
	testType, err := stats.ParseTestType(testName)
	if err != nil {
		return err
	}

	var groupA, groupB []float64
	var g errgroup.Group
	g.Go(func() (err error) {
		groupA, err = results.LoadSamples(opts.PathA)
		return err
	})
	g.Go(func() (err error) {
		groupB, err = results.LoadSamples(opts.PathB)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	res, err := stats.SignificanceTest(groupA, groupB, testType)
	if err != nil {
		return err
	}
	logging.LogAnalysis("compare", opts.PathA+" vs "+opts.PathB, "", res)

	if cfg.JSONMode {
		return writeJSON(out, res)
	}
	writeSignificance(out, res, len(groupA), len(groupB))
	return nil
}

func writeSignificance(out io.Writer, res stats.SignificanceResult, n1, n2 int) {
	fmt.Fprintf(out, "Test:        %s\n", res.TestType)
	fmt.Fprintf(out, "Samples:     n1=%d n2=%d\n", n1, n2)
	fmt.Fprintf(out, "Statistic:   %.4f\n", res.Statistic)
	fmt.Fprintf(out, "p-value:     %.4g\n", res.PValue)
	fmt.Fprintf(out, "Cohen's d:   %.4f (%s)\n", res.CohensD, effectMagnitude(res.CohensD))

	switch {
	case res.Significant01:
		color.New(color.FgGreen, color.Bold).Fprintln(out, "Significant: yes (p < 0.01)")
	case res.Significant05:
		color.New(color.FgGreen).Fprintln(out, "Significant: yes (p < 0.05)")
	default:
		color.New(color.FgYellow).Fprintln(out, "Significant: no (p >= 0.05)")
	}
}

// effectMagnitude uses Cohen's conventional cut-offs.
func effectMagnitude(d float64) string {
	if d < 0 {
		d = -d
	}
	switch {
	case d < 0.2:
		return "negligible"
	case d < 0.5:
		return "small"
	case d < 0.8:
		return "medium"
	default:
		return "large"
	}
}
