package department

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository, employeeRepo employee.EmployeeRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// headcounts counts active employees per department.
func (s *DepartmentServiceImpl) headcounts(ctx context.Context) (map[string]int, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	counts := make(map[string]int)
	for _, e := range employees {
		if !e.IsActive() {
			continue
		}
		counts[e.DepartmentID]++
	}
	return counts, nil
}

func toResponse(d department.Department, count int) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Manager:       d.Manager,
		Description:   d.Description,
		EmployeeCount: count,
	}
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	depts, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	counts, err := s.headcounts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]department.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		result = append(result, toResponse(d, counts[d.ID]))
	}
	return result, nil
}

// GetByID implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	counts, err := s.headcounts(ctx)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toResponse(d, counts[d.ID]), nil
}
