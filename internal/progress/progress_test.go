package progress

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterFunc(t *testing.T) {
	var gotPercent int
	var gotMessage string
	r := ReporterFunc(func(percent int, message string) {
		gotPercent = percent
		gotMessage = message
	})

	r.Report(55, "validating")

	assert.Equal(t, 55, gotPercent)
	assert.Equal(t, "validating", gotMessage)
}

func TestLogReporter(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	NewLogReporter(logger).Report(35, "parsing")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, 35, entry.Data["percent"])
	assert.Equal(t, "parsing", entry.Data["stage"])
}

func TestNewLogReporterNilLogger(t *testing.T) {
	r := NewLogReporter(nil)
	require.NotNil(t, r)
	// Must not panic.
	r.Report(100, "complete")
}

func TestNop(t *testing.T) {
	// Must not panic.
	Nop{}.Report(50, "anything")
}
