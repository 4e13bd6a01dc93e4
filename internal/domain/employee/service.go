package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees filters employees by free-text search, status and department
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee adds a new employee; ID and hire date default when omitted
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee merges the non-nil fields of req into the stored employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee hard deletes an employee; dependent records are kept
	DeleteEmployee(ctx context.Context, id string) error

	// DeactivateEmployee sets status to inactive without removing the record
	DeactivateEmployee(ctx context.Context, id string) (EmployeeResponse, error)
}
