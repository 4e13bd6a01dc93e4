package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type reportRepositoryImpl struct {
	store *Store
}

func NewReportRepository(store *Store) report.ReportRepository {
	return &reportRepositoryImpl{store: store}
}

// GetAttendanceReport joins records with their employee and department.
// Records of deleted employees keep empty names and are dropped when a
// department filter is set.
func (r *reportRepositoryImpl) GetAttendanceReport(ctx context.Context, startDate, endDate time.Time, departmentID *string) ([]report.AttendanceReportRow, error) {
	from := startDate.Format(validator.DateLayout)
	to := endDate.Format(validator.DateLayout)

	rows := []report.AttendanceReportRow{}
	r.store.read(func() {
		s := r.store
		for _, rec := range s.attendance.items {
			day := rec.Date.Format(validator.DateLayout)
			if day < from || day > to {
				continue
			}

			emp, known := s.employees.get(rec.EmployeeID)
			if departmentID != nil && (!known || emp.DepartmentID != *departmentID) {
				continue
			}

			row := report.AttendanceReportRow{
				RecordID:      rec.ID,
				EmployeeID:    rec.EmployeeID,
				Date:          day,
				CheckInTime:   rec.CheckInTime,
				CheckOutTime:  rec.CheckOutTime,
				WorkHours:     rec.WorkHours,
				OvertimeHours: rec.Overtime(),
				Status:        string(rec.Status),
			}
			if known {
				row.EmployeeName = emp.Name
				row.EmployeeCode = emp.EmployeeCode
				if dept, ok := s.departments.get(emp.DepartmentID); ok {
					row.DepartmentName = dept.Name
				}
			}
			rows = append(rows, row)
		}
	})
	return rows, nil
}
