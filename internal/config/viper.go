// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Analyzer struct {
		MaxSegmentDetails int `mapstructure:"max_segment_details" yaml:"max_segment_details"`
		PreviewSize       int `mapstructure:"preview_size" yaml:"preview_size"`
		MaxContextParties int `mapstructure:"max_context_parties" yaml:"max_context_parties"`
		MaxContextIssues  int `mapstructure:"max_context_issues" yaml:"max_context_issues"`
	} `mapstructure:"analyzer" yaml:"analyzer"`

	Report struct {
		Format    string `mapstructure:"format" yaml:"format"`
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"report" yaml:"report"`

	Store struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"store" yaml:"store"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.edi-analyze")
	v.AddConfigPath(".edi-analyze")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("EDI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Analyzer defaults
	v.SetDefault("analyzer.max_segment_details", 5000)
	v.SetDefault("analyzer.preview_size", 4000)
	v.SetDefault("analyzer.max_context_parties", 10)
	v.SetDefault("analyzer.max_context_issues", 10)

	// Report defaults
	v.SetDefault("report.format", "json")
	v.SetDefault("report.directory", "")

	// Store defaults
	v.SetDefault("store.directory", ".edi-analyze/analyses")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate analyzer ceilings
	if config.Analyzer.MaxSegmentDetails < 1 {
		return fmt.Errorf("analyzer.max_segment_details must be positive, got: %d", config.Analyzer.MaxSegmentDetails)
	}
	if config.Analyzer.PreviewSize < 1 {
		return fmt.Errorf("analyzer.preview_size must be positive, got: %d", config.Analyzer.PreviewSize)
	}

	// Validate report format
	switch config.Report.Format {
	case "json", "yaml", "csv":
	default:
		return fmt.Errorf("invalid report format: %s (must be 'json', 'yaml' or 'csv')", config.Report.Format)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
