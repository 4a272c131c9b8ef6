// Package config loads and validates the application configuration from an
// optional YAML file overlaid with MEDINSIGHT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. MEDINSIGHT_OUTPUT_DIR.
const envPrefix = "MEDINSIGHT"

// Config represents the complete application configuration.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Output   OutputConfig   `yaml:"output"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatasetConfig describes where the insurance dataset comes from.
// When URL is set the file is downloaded to DownloadPath before loading;
// otherwise Path must point to an existing local CSV.
type DatasetConfig struct {
	URL          string `yaml:"url"`
	Path         string `yaml:"path"`
	DownloadPath string `yaml:"download_path" split_words:"true"`
}

// OutputConfig describes where generated files are written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	ExcelBOM bool   `yaml:"excel_bom" split_words:"true"`
}

// AnalysisConfig holds tunables for the statistics stage.
type AnalysisConfig struct {
	HistogramBins int     `yaml:"histogram_bins" split_words:"true"`
	Alpha         float64 `yaml:"alpha"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path" split_words:"true"`
}

// Default returns the baseline configuration before any file or environment
// overrides are applied.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{
			DownloadPath: filepath.Join(os.TempDir(), "medical_insurance.csv"),
		},
		Output: OutputConfig{
			Dir:      "output",
			ExcelBOM: true,
		},
		Analysis: AnalysisConfig{
			HistogramBins: 30,
			Alpha:         0.05,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: filepath.Join("logs", "medinsight.log"),
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (when
// it exists; an empty path means skip), then environment variables. Callers
// apply their own overrides before Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}
	return &cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Dataset.URL == "" && c.Dataset.Path == "" {
		return fmt.Errorf("dataset: either url or path must be set")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output: dir must not be empty")
	}
	if c.Analysis.HistogramBins <= 0 {
		return fmt.Errorf("analysis: histogram_bins must be positive, got %d", c.Analysis.HistogramBins)
	}
	if c.Analysis.Alpha <= 0 || c.Analysis.Alpha >= 1 {
		return fmt.Errorf("analysis: alpha must be in (0, 1), got %g", c.Analysis.Alpha)
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("logging: output must be console, file or both, got %q", c.Logging.Output)
	}
	return nil
}
