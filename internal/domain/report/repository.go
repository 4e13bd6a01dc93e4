package report

import (
	"context"
	"time"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// GetAttendanceReport returns records dated within [startDate, endDate],
	// joined with employee and department, in store order. Labels are left
	// empty for the service to fill.
	GetAttendanceReport(ctx context.Context, startDate, endDate time.Time, departmentID *string) ([]AttendanceReportRow, error)
}
