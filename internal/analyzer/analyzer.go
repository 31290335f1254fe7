// Package analyzer orchestrates the analysis pipeline: delimiter
// resolution, tokenizing, parsing, validation, extraction, compliance
// inference and context compression, assembled into one immutable
// Analysis record with per-stage timings and bounded memory.
package analyzer

import (
	"strings"
	"time"

	"fjacquet/edi-analyze/internal/compliance"
	"fjacquet/edi-analyze/internal/compressor"
	"fjacquet/edi-analyze/internal/ediparser"
	"fjacquet/edi-analyze/internal/extractor"
	"fjacquet/edi-analyze/internal/models"
	"fjacquet/edi-analyze/internal/parsererror"
	"fjacquet/edi-analyze/internal/progress"
	"fjacquet/edi-analyze/internal/textutils"
	"fjacquet/edi-analyze/internal/validator"

	"github.com/sirupsen/logrus"
)

// Limits bounds the memory the Analysis may retain regardless of
// input size.
type Limits struct {
	// MaxSegmentDetails caps the per-segment detail records kept on the
	// Analysis; parsing continues past the ceiling but details beyond
	// it are dropped and the truncation flag is set.
	MaxSegmentDetails int
	// PreviewSize caps the raw input preview in characters.
	PreviewSize int
	// MaxContextParties and MaxContextIssues bound the rendered LLM
	// context block.
	MaxContextParties int
	MaxContextIssues  int
}

// DefaultLimits returns the documented default ceilings.
func DefaultLimits() Limits {
	return Limits{
		MaxSegmentDetails: 5000,
		PreviewSize:       4000,
		MaxContextParties: 10,
		MaxContextIssues:  10,
	}
}

// Pipeline stage names used for duration reporting.
const (
	StageTokenize   = "tokenize"
	StageValidate   = "validate"
	StageExtract    = "extract"
	StageCompliance = "compliance"
	StageCompress   = "compress"
)

// Analyzer runs the analysis pipeline. It holds no per-document state;
// one instance may analyze any number of documents, and independent
// instances may run concurrently.
type Analyzer struct {
	limits   Limits
	reporter progress.Reporter
	log      *logrus.Logger
}

// New creates an Analyzer with the default limits and a silent
// progress reporter.
func New() *Analyzer {
	return NewWithLimits(DefaultLimits())
}

// NewWithLimits creates an Analyzer with explicit limits.
func NewWithLimits(limits Limits) *Analyzer {
	if limits.MaxSegmentDetails <= 0 {
		limits.MaxSegmentDetails = DefaultLimits().MaxSegmentDetails
	}
	if limits.PreviewSize <= 0 {
		limits.PreviewSize = DefaultLimits().PreviewSize
	}
	if limits.MaxContextParties <= 0 {
		limits.MaxContextParties = DefaultLimits().MaxContextParties
	}
	if limits.MaxContextIssues <= 0 {
		limits.MaxContextIssues = DefaultLimits().MaxContextIssues
	}
	return &Analyzer{
		limits:   limits,
		reporter: progress.Nop{},
		log:      logrus.New(),
	}
}

// SetLogger sets a custom logger for the analyzer and all pipeline
// stages.
func (a *Analyzer) SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	a.log = logger
	ediparser.SetLogger(logger)
	validator.SetLogger(logger)
	extractor.SetLogger(logger)
	compliance.SetLogger(logger)
	compressor.SetLogger(logger)
}

// SetReporter sets the progress collaborator that receives coarse
// stage events while Analyze runs.
func (a *Analyzer) SetReporter(reporter progress.Reporter) {
	if reporter != nil {
		a.reporter = reporter
	}
}

// Analyze runs the full pipeline over one document. Malformed or
// incomplete EDI input always produces a best-effort Analysis with a
// populated ValidationResult; only an invalid call contract returns an
// error.
func (a *Analyzer) Analyze(raw string, file models.FileInfo, userCtx models.UserContext) (*models.Analysis, error) {
	if strings.TrimSpace(file.Name) == "" {
		return nil, &parsererror.ContractError{Field: "file.Name", Reason: "display name is required"}
	}
	if file.Size < 0 {
		return nil, &parsererror.ContractError{Field: "file.Size", Reason: "byte size must not be negative"}
	}

	a.log.WithFields(logrus.Fields{
		"file": file.Name,
		"size": file.Size,
	}).Info("Analyzing EDI document")

	analysis := &models.Analysis{
		FileName: file.Name,
		Metadata: models.Metadata{
			StageDurations: make(map[string]time.Duration),
			ByteSize:       len(raw),
			LineCount:      countLines(raw),
			RawPreview:     textutils.Truncate(raw, a.limits.PreviewSize),
		},
	}

	a.reporter.Report(5, "reading")

	segments, delims := a.timed(analysis, StageTokenize, func() ([]models.Segment, models.Delimiters) {
		return ediparser.ParseDocument(raw)
	})
	analysis.Delimiters = delims
	analysis.SegmentCount = len(segments)
	analysis.SegmentTags = distinctTags(segments)
	a.reporter.Report(35, "parsing")

	start := time.Now()
	analysis.Validation = validator.Validate(segments)
	analysis.Metadata.StageDurations[StageValidate] = time.Since(start)
	a.reporter.Report(55, "validating")

	start = time.Now()
	analysis.Interchange = extractor.ExtractInterchange(segments)
	analysis.MessageHeader = extractor.ExtractMessageHeader(segments)
	analysis.Business = extractor.ExtractBusinessData(segments)
	analysis.Parties = extractor.ExtractParties(segments)
	analysis.Metadata.StageDurations[StageExtract] = time.Since(start)
	a.reporter.Report(70, "extracting")

	start = time.Now()
	analysis.Compliance = compliance.Infer(analysis.MessageHeader, analysis.SegmentTags, userCtx)
	analysis.Metadata.StageDurations[StageCompliance] = time.Since(start)
	a.reporter.Report(80, "compliance")

	analysis.Segments = a.segmentDetails(segments, analysis.Validation, &analysis.Metadata)

	start = time.Now()
	opts := compressor.Options{MaxParties: a.limits.MaxContextParties, MaxIssues: a.limits.MaxContextIssues}
	analysis.LLMContext = compressor.BuildContext(analysis, segments, opts)
	analysis.Summary = compressor.BuildSummary(analysis)
	analysis.Metadata.TokenEstimate = compressor.TokenEstimate(analysis.LLMContext)
	analysis.Metadata.CompressionRatio = compressor.CompressionRatio(analysis.LLMContext, len(raw))
	analysis.Metadata.StageDurations[StageCompress] = time.Since(start)
	a.reporter.Report(90, "compressing")

	if analysis.Validation.IsValid() {
		analysis.Status = models.StatusValidated
	} else {
		analysis.Status = models.StatusParsed
	}
	a.reporter.Report(100, "complete")

	a.log.WithFields(logrus.Fields{
		"file":     file.Name,
		"segments": analysis.SegmentCount,
		"status":   analysis.Status,
		"errors":   analysis.Validation.ErrorCount,
	}).Info("Analysis complete")
	return analysis, nil
}

// timed measures the tokenize/parse stage; the other stages are timed
// inline because their results land on different Analysis fields.
func (a *Analyzer) timed(analysis *models.Analysis, stage string, fn func() ([]models.Segment, models.Delimiters)) ([]models.Segment, models.Delimiters) {
	start := time.Now()
	segments, delims := fn()
	analysis.Metadata.StageDurations[stage] = time.Since(start)
	return segments, delims
}

// segmentDetails builds the bounded detail records and associates
// validation issues with their segments by tag.
func (a *Analyzer) segmentDetails(segments []models.Segment, result models.ValidationResult, meta *models.Metadata) []models.SegmentDetail {
	issuesByTag := make(map[string][]string)
	for _, issue := range result.Issues {
		if issue.Severity == models.SeverityError {
			issuesByTag[issue.Segment] = append(issuesByTag[issue.Segment], issue.Message)
		}
	}

	limit := len(segments)
	if limit > a.limits.MaxSegmentDetails {
		limit = a.limits.MaxSegmentDetails
		meta.Truncated = true
		meta.TruncatedAt = limit
		a.log.WithFields(logrus.Fields{
			"segments": len(segments),
			"ceiling":  limit,
		}).Warn("Segment detail list truncated")
	}

	details := make([]models.SegmentDetail, 0, limit)
	for _, seg := range segments[:limit] {
		values := make([]string, 0, len(seg.Fields))
		for _, f := range seg.Fields {
			values = append(values, f.Value)
		}
		errors := issuesByTag[seg.Tag]
		details = append(details, models.SegmentDetail{
			Tag:       seg.Tag,
			Position:  seg.Position,
			Raw:       seg.Raw,
			Fields:    values,
			HasErrors: len(errors) > 0,
			Errors:    errors,
		})
	}
	return details
}

func distinctTags(segments []models.Segment) []string {
	seen := make(map[string]bool, len(segments))
	var tags []string
	for _, seg := range segments {
		if !seen[seg.Tag] {
			seen[seg.Tag] = true
			tags = append(tags, seg.Tag)
		}
	}
	return tags
}

func countLines(raw string) int {
	if raw == "" {
		return 0
	}
	return strings.Count(raw, "\n") + 1
}
