package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	now            func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, departmentRepo department.DepartmentRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		now:            time.Now,
	}
}

// departmentNames maps department id to name.
func (s *EmployeeServiceImpl) departmentNames(ctx context.Context) (map[string]string, error) {
	depts, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	names := make(map[string]string, len(depts))
	for _, d := range depts {
		names[d.ID] = d.Name
	}
	return names, nil
}

func (s *EmployeeServiceImpl) toResponse(ctx context.Context, e employee.Employee) employee.EmployeeResponse {
	locale := catalog.LocaleFrom(ctx)
	deptName := catalog.UnknownLabel(locale)
	if dept, err := s.departmentRepo.GetByID(ctx, e.DepartmentID); err == nil {
		deptName = dept.Name
	}
	return e.ToResponse(deptName, catalog.Label(catalog.GroupEmployeeStatus, string(e.Status), locale))
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	empty := employee.ListEmployeeResponse{Employees: []employee.EmployeeResponse{}}
	if filter.Department != nil {
		dept, err := s.departmentRepo.GetByName(ctx, *filter.Department)
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return empty, nil
		}
		if err != nil {
			return employee.ListEmployeeResponse{}, fmt.Errorf("failed to get department by name: %w", err)
		}
		if filter.DepartmentID != nil && *filter.DepartmentID != dept.ID {
			return empty, nil
		}
		filter.DepartmentID = &dept.ID
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	names, err := s.departmentNames(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	locale := catalog.LocaleFrom(ctx)
	var search string
	if filter.Search != nil {
		search = strings.ToLower(strings.TrimSpace(*filter.Search))
	}

	result := employee.ListEmployeeResponse{Employees: []employee.EmployeeResponse{}}
	for _, e := range employees {
		if filter.Status != nil && string(e.Status) != *filter.Status {
			continue
		}
		if filter.DepartmentID != nil && e.DepartmentID != *filter.DepartmentID {
			continue
		}

		deptName, ok := names[e.DepartmentID]
		if !ok {
			deptName = catalog.UnknownLabel(locale)
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.EmployeeCode), search) &&
			!strings.Contains(strings.ToLower(deptName), search) {
			continue
		}

		result.Employees = append(result.Employees, e.ToResponse(deptName, catalog.Label(catalog.GroupEmployeeStatus, string(e.Status), locale)))
	}
	result.TotalCount = len(result.Employees)

	return result, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	now := s.now()
	newEmployee := employee.Employee{
		ID:           uuid.Must(uuid.NewV7()).String(),
		EmployeeCode: req.EmployeeCode,
		Name:         strings.TrimSpace(req.Name),
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		Phone:        req.Phone,
		Email:        req.Email,
		Status:       employee.EmployeeStatus(req.Status),
		AvatarURL:    req.AvatarURL,
		HireDate:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if req.ID != nil {
		newEmployee.ID = *req.ID
	}
	if req.HireDate != nil {
		if d, ok := validator.IsValidDate(*req.HireDate); ok {
			newEmployee.HireDate = d
		}
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return s.toResponse(ctx, created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req.ID, req)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.toResponse(ctx, updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	updated, err := s.employeeRepo.Deactivate(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return s.toResponse(ctx, updated), nil
}
