package fixtures

import (
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string       { return &s }
func float64Ptr(f float64) *float64 { return &f }

// startOfDay drops the clock part so generated dates compare as calendar days.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// ==========================================
// DEPARTMENTS
// ==========================================

// SeedDepartments returns the four departments of a fresh dashboard.
func SeedDepartments() []department.Department {
	return []department.Department{
		{ID: "1", Name: "Tech", Manager: strPtr("Zhang San"), Description: strPtr("Builds and runs the product")},
		{ID: "2", Name: "Product", Manager: strPtr("Wang Wu"), Description: strPtr("Plans and designs the product")},
		{ID: "3", Name: "Operations", Description: strPtr("Promotes and operates the product")},
		{ID: "4", Name: "HR", Description: strPtr("Manages people and hiring")},
	}
}

// ==========================================
// EMPLOYEES
// ==========================================

// SeedEmployees returns the three starting employees.
func SeedEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:           "1",
			EmployeeCode: "EMP001",
			Name:         "Zhang San",
			DepartmentID: "1",
			Position:     "Frontend Engineer",
			Phone:        "13800138001",
			Email:        "zhangsan@company.com",
			Status:       employee.EmployeeStatusActive,
			HireDate:     mustDate("2023-01-15"),
		},
		{
			ID:           "2",
			EmployeeCode: "EMP002",
			Name:         "Li Si",
			DepartmentID: "1",
			Position:     "Backend Engineer",
			Phone:        "13800138002",
			Email:        "lisi@company.com",
			Status:       employee.EmployeeStatusActive,
			HireDate:     mustDate("2023-02-01"),
		},
		{
			ID:           "3",
			EmployeeCode: "EMP003",
			Name:         "Wang Wu",
			DepartmentID: "2",
			Position:     "Product Manager",
			Phone:        "13800138003",
			Email:        "wangwu@company.com",
			Status:       employee.EmployeeStatusActive,
			HireDate:     mustDate("2023-03-10"),
		},
	}
}

func employeeIDs(employees []employee.Employee) []string {
	ids := make([]string, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}
	return ids
}
