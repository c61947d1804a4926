package domain

import "io"

// OutputFormat selects how a CloneResult is rendered.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// ReportWriter abstracts writing reports to a destination (file or writer).
//
// Implementations live in the service layer.
type ReportWriter interface {
    // Write writes formatted content using the provided writeFunc.
    // - If outputPath is non-empty, implementations should create/truncate the file
    //   at that path and pass the file as the writer to writeFunc.
    // - If outputPath is empty, implementations should pass the provided writer to writeFunc.
    // Implementations may emit user-facing status messages (e.g., file paths).
    Write(writer io.Writer, outputPath string, format OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error
}

