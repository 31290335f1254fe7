// Package edi is the public entry point of the analysis engine. It
// fronts the internal pipeline with a stable surface: raw document text
// in, one immutable Analysis out.
package edi

import (
	"fjacquet/edi-analyze/internal/analyzer"
	"fjacquet/edi-analyze/internal/models"

	"github.com/sirupsen/logrus"
)

// Re-exported aggregate types so that callers do not import internal
// packages.
type (
	// Analysis is the aggregate analysis record.
	Analysis = models.Analysis
	// FileInfo is the caller-supplied document metadata.
	FileInfo = models.FileInfo
	// UserContext carries optional compliance hints.
	UserContext = models.UserContext
	// Limits bounds the memory retained per analysis.
	Limits = analyzer.Limits
)

// Analyze runs the full pipeline with default limits. Malformed EDI
// input yields a best-effort Analysis with validation findings; only an
// invalid call contract returns an error.
func Analyze(raw string, file FileInfo, userCtx UserContext) (*Analysis, error) {
	return analyzer.New().Analyze(raw, file, userCtx)
}

// AnalyzeWithLimits runs the full pipeline with explicit limits.
func AnalyzeWithLimits(raw string, file FileInfo, userCtx UserContext, limits Limits) (*Analysis, error) {
	return analyzer.NewWithLimits(limits).Analyze(raw, file, userCtx)
}

// AnalyzeWithLogger runs the pipeline with default limits and a custom
// logger wired through every stage.
func AnalyzeWithLogger(raw string, file FileInfo, userCtx UserContext, logger *logrus.Logger) (*Analysis, error) {
	eng := analyzer.New()
	eng.SetLogger(logger)
	return eng.Analyze(raw, file, userCtx)
}
