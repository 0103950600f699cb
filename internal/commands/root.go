// internal/commands/root.go
package riskstats

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mwiater/riskstats/internal/appconfig"
	"github.com/mwiater/riskstats/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

var boolFlags = []string{"debug", "jsonMode"}
var stringFlags = []string{"negativeLabel", "positiveLabel", "systemName", "testType", "logFile"}
var floatFlags = []string{"confidence", "gapThreshold"}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "riskstats",
	Short: "Accuracy, error-rate and brittleness statistics for LLM test outcomes",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		for _, name := range boolFlags {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatBool(viper.GetBool(name)))
			}
		}
		for _, name := range stringFlags {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		for _, name := range floatFlags {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatFloat(viper.GetFloat64(name), 'g', -1, 64))
			}
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.SetDebug(currentConfig.Debug)
		logging.LogDebug("config loaded from %q", cfg.ConfigPath)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("jsonMode", false, "emit JSON instead of text")
	rootCmd.PersistentFlags().Float64("confidence", 0, "confidence level for accuracy intervals (0 = 0.95)")
	rootCmd.PersistentFlags().String("negativeLabel", "", "ground-truth negative label (default NO)")
	rootCmd.PersistentFlags().String("positiveLabel", "", "ground-truth positive label (default YES)")
	rootCmd.PersistentFlags().String("systemName", "", "system name shown in report headers")
	rootCmd.PersistentFlags().Float64("gapThreshold", 0, "bimodality gap ratio threshold (0 = 0.3)")
	rootCmd.PersistentFlags().String("testType", "", "significance test: ttest or mannwhitney")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	for _, name := range append(append(append([]string{}, boolFlags...), stringFlags...), floatFlags...) {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config file; a missing file leaves the defaults in place.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	// JSON files are validated as written, before flags override them.
	if path := viper.ConfigFileUsed(); strings.EqualFold(filepath.Ext(path), ".json") {
		if _, err := appconfig.Load(path); err != nil {
			return err
		}
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
