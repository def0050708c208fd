package models

// ReportType enumerates admin report datasets.
type ReportType string

const (
	ReportTypeUsers   ReportType = "users"
	ReportTypeSwaps   ReportType = "swaps"
	ReportTypeSummary ReportType = "summary"
)

// ReportFormat enumerates output encodings.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

// Report is a rendered admin export ready to be written out.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}
