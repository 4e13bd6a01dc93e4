package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
	employeeRepo     employee.EmployeeRepository
	departmentRepo   department.DepartmentRepository
	now              func() time.Time
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
		departmentRepo:   departmentRepo,
		now:              time.Now,
	}
}

// directory resolves employee and department names for responses.
type directory struct {
	employees   map[string]employee.Employee
	departments map[string]string
}

func (s *LeaveServiceImpl) directory(ctx context.Context) (directory, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return directory{}, fmt.Errorf("failed to list employees: %w", err)
	}
	depts, err := s.departmentRepo.List(ctx)
	if err != nil {
		return directory{}, fmt.Errorf("failed to list departments: %w", err)
	}

	dir := directory{
		employees:   make(map[string]employee.Employee, len(employees)),
		departments: make(map[string]string, len(depts)),
	}
	for _, e := range employees {
		dir.employees[e.ID] = e
	}
	for _, d := range depts {
		dir.departments[d.ID] = d.Name
	}
	return dir, nil
}

func (d directory) toResponse(ctx context.Context, lr leave.LeaveRequest) leave.LeaveRequestResponse {
	locale := catalog.LocaleFrom(ctx)
	resp := lr.ToResponse()
	resp.EmployeeName = catalog.UnknownLabel(locale)
	resp.DepartmentName = catalog.UnknownLabel(locale)
	if e, ok := d.employees[lr.EmployeeID]; ok {
		resp.EmployeeName = e.Name
		if name, ok := d.departments[e.DepartmentID]; ok {
			resp.DepartmentName = name
		}
	}
	resp.TypeLabel = catalog.Label(catalog.GroupLeaveType, string(lr.Type), locale)
	resp.TypeColor = catalog.Color(catalog.GroupLeaveType, string(lr.Type))
	resp.StatusLabel = catalog.Label(catalog.GroupLeaveStatus, string(lr.Status), locale)
	resp.StatusColor = catalog.Color(catalog.GroupLeaveStatus, string(lr.Status))
	return resp
}

func (s *LeaveServiceImpl) respond(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequestResponse, error) {
	dir, err := s.directory(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return dir.toResponse(ctx, lr), nil
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	days, err := leave.CalculateDays(start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	now := s.now()
	lr := leave.LeaveRequest{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: req.EmployeeID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     leave.LeaveRequestStatusPending,
		AppliedAt:  now,
	}
	if req.ID != nil {
		lr.ID = *req.ID
	}

	created, err := s.leaveRequestRepo.Create(ctx, lr)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return s.respond(ctx, created)
}

// UpdateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveRequest(ctx context.Context, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := s.leaveRequestRepo.Update(ctx, req.ID, req)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return s.respond(ctx, updated)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecisionRequest, status leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decided, err := s.leaveRequestRepo.Decide(ctx, req.ID, status, strings.TrimSpace(req.ApprovedBy), req.Comments, s.now())
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to %s leave request: %w", verb(status), err)
	}
	return s.respond(ctx, decided)
}

func verb(status leave.LeaveRequestStatus) string {
	if status == leave.LeaveRequestStatusRejected {
		return "reject"
	}
	return "approve"
}

// ApproveLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.DecisionRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.LeaveRequestStatusApproved)
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.DecisionRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.LeaveRequestStatusRejected)
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	lr, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return s.respond(ctx, lr)
}

// ListLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequest(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	dir, err := s.directory(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	result := leave.ListLeaveRequestResponse{
		TotalCount:    len(requests),
		LeaveRequests: make([]leave.LeaveRequestResponse, 0, len(requests)),
	}
	for _, lr := range requests {
		result.LeaveRequests = append(result.LeaveRequests, dir.toResponse(ctx, lr))
	}
	return result, nil
}

// CountByStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) CountByStatus(ctx context.Context) (leave.LeaveRequestCounts, error) {
	requests, err := s.leaveRequestRepo.List(ctx, leave.LeaveRequestFilter{})
	if err != nil {
		return leave.LeaveRequestCounts{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	var counts leave.LeaveRequestCounts
	for _, lr := range requests {
		counts.Add(lr.Status)
	}
	return counts, nil
}
