package analysis

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
)

// Dataset is an immutable copy of the collections an analysis reads.
type Dataset struct {
	Departments []department.Department
	Employees   []employee.Employee
	Records     []attendance.AttendanceRecord
}

type AnalysisRepository interface {
	// GetAttendanceDataset returns records dated within [startDate, endDate].
	// With departmentID set, departments, employees and records are narrowed
	// to that department.
	GetAttendanceDataset(ctx context.Context, startDate, endDate time.Time, departmentID *string) (*Dataset, error)
}
