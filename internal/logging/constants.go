package logging

// Standardized field names for structured logging. These constants keep
// the log output consistent across packages so that logs are easy to
// filter on file, segment and stage.
const (
	FieldFile       = "file_path"
	FieldSegment    = "segment"
	FieldPosition   = "position"
	FieldStage      = "stage"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldAnalysisID = "analysis_id"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
