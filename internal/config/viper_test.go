package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Analyzer.MaxSegmentDetails = 5000
	cfg.Analyzer.PreviewSize = 4000
	cfg.Analyzer.MaxContextParties = 10
	cfg.Analyzer.MaxContextIssues = 10
	cfg.Report.Format = "json"
	cfg.Store.Directory = ".edi-analyze/analyses"
	return cfg
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 5000, cfg.Analyzer.MaxSegmentDetails)
	assert.Equal(t, 4000, cfg.Analyzer.PreviewSize)
	assert.Equal(t, 10, cfg.Analyzer.MaxContextParties)
	assert.Equal(t, 10, cfg.Analyzer.MaxContextIssues)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, ".edi-analyze/analyses", cfg.Store.Directory)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("EDI_ANALYZER_MAX_SEGMENT_DETAILS", "250")
	t.Setenv("EDI_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Analyzer.MaxSegmentDetails)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid defaults", func(*Config) {}, ""},
		{"Bad log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"Bad log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"Zero segment ceiling", func(c *Config) { c.Analyzer.MaxSegmentDetails = 0 }, "max_segment_details"},
		{"Negative preview", func(c *Config) { c.Analyzer.PreviewSize = -1 }, "preview_size"},
		{"Bad report format", func(c *Config) { c.Report.Format = "pdf" }, "invalid report format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfigBadLevel(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = "nonsense"

	logger := ConfigureLoggingFromConfig(cfg)

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("EDI_TEST_KEY", "set")

	assert.Equal(t, "set", GetEnv("EDI_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("EDI_TEST_KEY_MISSING", "fallback"))
}
