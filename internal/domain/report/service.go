package report

import "context"

// ExportFile is a rendered report ready to be served as a download.
type ExportFile struct {
	ContentType string
	Filename    string
	Content     []byte
}

// ReportService defines the interface for report operations
type ReportService interface {
	GetAttendanceReport(ctx context.Context, req AttendanceReportRequest) (*AttendanceReportResponse, error)

	// ExportAttendanceReport renders the report in req.Format.
	ExportAttendanceReport(ctx context.Context, req AttendanceReportRequest) (*ExportFile, error)
}
