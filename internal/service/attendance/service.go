package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository, departmentRepo department.DepartmentRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func toResponse(ctx context.Context, rec attendance.AttendanceRecord, employees map[string]employee.Employee) attendance.AttendanceResponse {
	locale := catalog.LocaleFrom(ctx)
	name := catalog.UnknownLabel(locale)
	if e, ok := employees[rec.EmployeeID]; ok {
		name = e.Name
	}
	return rec.ToResponse(name, catalog.Label(catalog.GroupAttendanceStatus, string(rec.Status), locale))
}

func (s *AttendanceServiceImpl) employeesByID(ctx context.Context) (map[string]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	return byID, nil
}

func (s *AttendanceServiceImpl) respond(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceResponse, error) {
	employees, err := s.employeesByID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(ctx, rec, employees), nil
}

// CreateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	rec := attendance.AttendanceRecord{
		ID:            uuid.Must(uuid.NewV7()).String(),
		EmployeeID:    req.EmployeeID,
		Date:          date,
		CheckInTime:   req.CheckInTime,
		CheckOutTime:  req.CheckOutTime,
		WorkHours:     req.WorkHours,
		Status:        attendance.AttendanceStatus(req.Status),
		OvertimeHours: req.OvertimeHours,
	}
	if req.ID != nil {
		rec.ID = *req.ID
	}

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return s.respond(ctx, created)
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.Update(ctx, req.ID, req)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return s.respond(ctx, updated)
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return s.respond(ctx, rec)
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	empty := attendance.ListAttendanceResponse{Records: []attendance.AttendanceResponse{}}
	if filter.Department != nil {
		dept, err := s.departmentRepo.GetByName(ctx, *filter.Department)
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return empty, nil
		}
		if err != nil {
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get department by name: %w", err)
		}
		if filter.DepartmentID != nil && *filter.DepartmentID != dept.ID {
			return empty, nil
		}
		filter.DepartmentID = &dept.ID
	}

	employees, err := s.employeesByID(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.DepartmentID != nil {
		filter.EmployeeIDs = []string{}
		for _, e := range employees {
			if e.DepartmentID == *filter.DepartmentID {
				filter.EmployeeIDs = append(filter.EmployeeIDs, e.ID)
			}
		}
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	result := attendance.ListAttendanceResponse{
		TotalCount: len(records),
		Records:    make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, rec := range records {
		result.Records = append(result.Records, toResponse(ctx, rec, employees))
	}
	return result, nil
}
