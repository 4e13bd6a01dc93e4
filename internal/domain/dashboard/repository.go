package dashboard

import (
	"context"
	"time"
)

type EmployeeSummaryStats struct {
	Total    int64
	Active   int64
	Inactive int64
}

// AttendanceStats counts records for a single day by status.
type AttendanceStats struct {
	Normal int64
	Late   int64
	Absent int64
	Other  int64 // early_leave and overtime
}

type LeaveStats struct {
	Pending  int64
	Approved int64
	Rejected int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	GetEmployeeSummary(ctx context.Context) (*EmployeeSummaryStats, error)

	// GetAttendanceStatsByDay counts the records dated on the given day
	GetAttendanceStatsByDay(ctx context.Context, date time.Time) (*AttendanceStats, error)

	GetLeaveStats(ctx context.Context) (*LeaveStats, error)
}
