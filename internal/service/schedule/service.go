package schedule

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository, employeeRepo employee.EmployeeRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ScheduleServiceImpl) employeeNames(ctx context.Context) (map[string]string, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names, nil
}

func toResponse(ctx context.Context, sc schedule.Schedule, names map[string]string) schedule.ScheduleResponse {
	locale := catalog.LocaleFrom(ctx)
	name, ok := names[sc.EmployeeID]
	if !ok {
		name = catalog.UnknownLabel(locale)
	}
	return sc.ToResponse(
		name,
		catalog.Label(catalog.GroupShift, string(sc.Shift), locale),
		catalog.Color(catalog.GroupShift, string(sc.Shift)),
	)
}

func (s *ScheduleServiceImpl) respond(ctx context.Context, sc schedule.Schedule) (schedule.ScheduleResponse, error) {
	names, err := s.employeeNames(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toResponse(ctx, sc, names), nil
}

// CreateSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	sc := schedule.Schedule{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: req.EmployeeID,
		Date:       date,
	}
	if req.ID != nil {
		sc.ID = *req.ID
	}
	sc.WithShift(schedule.Shift(req.Shift))

	created, err := s.scheduleRepo.Create(ctx, sc)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	return s.respond(ctx, created)
}

// UpdateSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UpdateSchedule(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	updated, err := s.scheduleRepo.Update(ctx, req.ID, req)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to update schedule: %w", err)
	}
	return s.respond(ctx, updated)
}

// DeleteSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	sc, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return s.respond(ctx, sc)
}

// ListSchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListSchedules(ctx context.Context, filter schedule.ScheduleFilter) (schedule.ListScheduleResponse, error) {
	if err := filter.Validate(); err != nil {
		return schedule.ListScheduleResponse{}, err
	}

	schedules, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		return schedule.ListScheduleResponse{}, fmt.Errorf("failed to list schedules: %w", err)
	}
	names, err := s.employeeNames(ctx)
	if err != nil {
		return schedule.ListScheduleResponse{}, err
	}

	result := schedule.ListScheduleResponse{
		TotalCount: len(schedules),
		Schedules:  make([]schedule.ScheduleResponse, 0, len(schedules)),
	}
	for _, sc := range schedules {
		result.Schedules = append(result.Schedules, toResponse(ctx, sc, names))
	}
	return result, nil
}

// GetDaySchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetDaySchedules(ctx context.Context, date string) (schedule.DayScheduleResponse, error) {
	filter := schedule.ScheduleFilter{Date: &date}
	list, err := s.ListSchedules(ctx, filter)
	if err != nil {
		return schedule.DayScheduleResponse{}, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return schedule.DayScheduleResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	scheduled := make(map[string]bool, len(list.Schedules))
	for _, sc := range list.Schedules {
		scheduled[sc.EmployeeID] = true
	}

	available := []schedule.EmployeeOption{}
	for _, e := range employees {
		if e.IsActive() && !scheduled[e.ID] {
			available = append(available, schedule.EmployeeOption{ID: e.ID, Name: e.Name})
		}
	}

	return schedule.DayScheduleResponse{
		Date:               date,
		Schedules:          list.Schedules,
		AvailableEmployees: available,
	}, nil
}
