package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

// ShowConfig prints the effective configuration, defaults applied.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &Config{}
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Confidence:      %v\n", cfg.ConfidenceLevel())
	fmt.Fprintf(out, "  Negative Label:  %s\n", cfg.NegativeClass())
	fmt.Fprintf(out, "  Positive Label:  %s\n", cfg.PositiveClass())
	fmt.Fprintf(out, "  Gap Threshold:   %v\n", cfg.GapThresholdValue())
	fmt.Fprintf(out, "  Test Type:       %s\n", cfg.TestTypeName())
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	if cfg.Debug {
		fmt.Fprintln(out)
		pp.Fprintln(out, *cfg)
	}
}
