package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/analysis"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type analysisRepositoryImpl struct {
	store *Store
}

func NewAnalysisRepository(store *Store) analysis.AnalysisRepository {
	return &analysisRepositoryImpl{store: store}
}

func (r *analysisRepositoryImpl) GetAttendanceDataset(ctx context.Context, startDate, endDate time.Time, departmentID *string) (*analysis.Dataset, error) {
	from := startDate.Format(validator.DateLayout)
	to := endDate.Format(validator.DateLayout)

	ds := &analysis.Dataset{}
	r.store.read(func() {
		s := r.store
		inDepartment := func(deptID string) bool {
			return departmentID == nil || deptID == *departmentID
		}

		ds.Departments = s.departments.filter(func(d department.Department) bool {
			return inDepartment(d.ID)
		})
		ds.Employees = s.employees.filter(func(e employee.Employee) bool {
			return inDepartment(e.DepartmentID)
		})
		ds.Records = s.attendance.filter(func(rec attendance.AttendanceRecord) bool {
			day := rec.Date.Format(validator.DateLayout)
			if day < from || day > to {
				return false
			}
			if departmentID == nil {
				return true
			}
			emp, ok := s.employees.get(rec.EmployeeID)
			return ok && emp.DepartmentID == *departmentID
		})
	})
	return ds, nil
}
