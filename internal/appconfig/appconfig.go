// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mwiater/riskstats/internal/stats"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultLogFile is used when the config omits logFile.
	defaultLogFile = "riskstats.log"
	// defaultTestType is the significance test used when the config omits testType.
	defaultTestType = "ttest"
)

// Config represents the top-level application configuration.
type Config struct {
	Confidence    float64 `json:"confidence,omitempty"`
	NegativeLabel string  `json:"negativeLabel,omitempty"`
	PositiveLabel string  `json:"positiveLabel,omitempty"`
	SystemName    string  `json:"systemName,omitempty"`
	GapThreshold  float64 `json:"gapThreshold,omitempty"`
	TestType      string  `json:"testType,omitempty"`
	Debug         bool    `json:"debug"`
	JSONMode      bool    `json:"jsonMode"`
	LogFile       string  `json:"logFile,omitempty"`
	ConfigPath    string  `json:"-"`
}

// ConfidenceLevel returns the confidence level for intervals, falling back to the default if not specified.
func (c Config) ConfidenceLevel() float64 {
	if c.Confidence == 0 {
		return stats.DefaultConfidence
	}
	return c.Confidence
}

// NegativeClass returns the ground-truth negative label.
func (c Config) NegativeClass() string {
	if label := strings.TrimSpace(c.NegativeLabel); label != "" {
		return label
	}
	return stats.DefaultNegativeLabel
}

// PositiveClass returns the ground-truth positive label.
func (c Config) PositiveClass() string {
	if label := strings.TrimSpace(c.PositiveLabel); label != "" {
		return label
	}
	return stats.DefaultPositiveLabel
}

// GapThresholdValue returns the bimodality gap threshold.
func (c Config) GapThresholdValue() float64 {
	if c.GapThreshold == 0 {
		return stats.DefaultGapThreshold
	}
	return c.GapThreshold
}

// TestTypeName returns the configured significance test selector.
func (c Config) TestTypeName() string {
	if name := strings.TrimSpace(c.TestType); name != "" {
		return name
	}
	return defaultTestType
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// StatsOptions converts the configuration into analysis options.
func (c Config) StatsOptions() stats.Options {
	return stats.Options{
		Confidence:    c.ConfidenceLevel(),
		NegativeLabel: c.NegativeClass(),
		PositiveLabel: c.PositiveClass(),
	}
}

// Validate reports the first configuration value that cannot be used.
func (c Config) Validate() error {
	if conf := c.ConfidenceLevel(); math.IsNaN(conf) || conf <= 0 || conf >= 1 {
		return fmt.Errorf("confidence must be between 0 and 1 (exclusive), got %v", c.Confidence)
	}
	if math.IsNaN(c.GapThreshold) || c.GapThreshold < 0 {
		return fmt.Errorf("gapThreshold must not be negative, got %v", c.GapThreshold)
	}
	if c.NegativeClass() == c.PositiveClass() {
		return fmt.Errorf("negativeLabel and positiveLabel must differ, both are %q", c.NegativeClass())
	}
	if _, err := stats.ParseTestType(c.TestTypeName()); err != nil {
		return fmt.Errorf("invalid testType: %w", err)
	}
	return nil
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
