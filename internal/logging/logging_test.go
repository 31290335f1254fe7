package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, adapter.logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, adapter.logger.Formatter)
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	logger := NewLogrusAdapter("shout", "text")
	adapter := logger.(*LogrusAdapter)

	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, adapter.logger.Formatter)
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	base := logrus.New()
	adapter := NewLogrusAdapterFromLogger(base).(*LogrusAdapter)
	assert.Equal(t, base, adapter.logger)

	// nil falls back to a fresh logger instead of panicking.
	require.NotNil(t, NewLogrusAdapterFromLogger(nil))
}

func TestLogrusAdapterChaining(t *testing.T) {
	logger := NewLogrusAdapter("info", "text")

	chained := logger.WithField("component", "test").WithError(errors.New("boom"))
	require.NotNil(t, chained)
	// Chaining returns new instances; the original is untouched.
	assert.NotSame(t, logger, chained)
}

func TestMockLoggerRecords(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("analysis complete", F("segments", 6))
	mock.Warn("truncated")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "analysis complete", mock.Entries[0].Message)
	require.Len(t, mock.Entries[0].Fields, 1)
	assert.Equal(t, "segments", mock.Entries[0].Fields[0].Key)
	assert.Equal(t, 6, mock.Entries[0].Fields[0].Value)
	assert.Equal(t, "WARN", mock.Entries[1].Level)
}

func TestMockLoggerWithErrorAndField(t *testing.T) {
	mock := &MockLogger{}
	cause := errors.New("disk full")

	mock.WithError(cause).WithField("id", "abc").Error("save failed")

	require.Len(t, mock.Entries, 1)
	entry := mock.Entries[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, cause, entry.Error)
	require.Len(t, entry.Fields, 1)
	assert.Equal(t, "id", entry.Fields[0].Key)
}

func TestConstants(t *testing.T) {
	for name, value := range map[string]string{
		"FieldFile":       FieldFile,
		"FieldSegment":    FieldSegment,
		"FieldPosition":   FieldPosition,
		"FieldStage":      FieldStage,
		"FieldStatus":     FieldStatus,
		"FieldCount":      FieldCount,
		"FieldAnalysisID": FieldAnalysisID,
	} {
		assert.NotEmpty(t, value, "%s constant should not be empty", name)
	}
}

func TestF(t *testing.T) {
	f := F("key", "value")
	assert.Equal(t, "key", f.Key)
	assert.Equal(t, "value", f.Value)
}
