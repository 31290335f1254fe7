// Package progress defines the progress-reporting collaborator that
// receives coarse (percent, message) events while a document is being
// analyzed. The core pipeline is a single-shot synchronous call; the
// wrapper around it brackets the pipeline stages with these events.
package progress

import "github.com/sirupsen/logrus"

// Reporter receives ordered progress events. Percent runs from 0 to
// 100; Message is an opaque human-readable stage description.
type Reporter interface {
	Report(percent int, message string)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(percent int, message string)

// Report calls the wrapped function.
func (f ReporterFunc) Report(percent int, message string) {
	f(percent, message)
}

// LogReporter writes progress events to a logrus logger at debug
// level.
type LogReporter struct {
	log *logrus.Logger
}

// NewLogReporter creates a Reporter backed by the given logger.
func NewLogReporter(logger *logrus.Logger) *LogReporter {
	if logger == nil {
		logger = logrus.New()
	}
	return &LogReporter{log: logger}
}

// Report logs one progress event.
func (r *LogReporter) Report(percent int, message string) {
	r.log.WithFields(logrus.Fields{
		"percent": percent,
		"stage":   message,
	}).Debug("Analysis progress")
}

// Nop is a Reporter that discards all events.
type Nop struct{}

// Report discards the event.
func (Nop) Report(int, string) {}
