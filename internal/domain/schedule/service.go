package schedule

import "context"

type ScheduleService interface {
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id string) error
	GetSchedule(ctx context.Context, id string) (ScheduleResponse, error)
	ListSchedules(ctx context.Context, filter ScheduleFilter) (ListScheduleResponse, error)
	// GetDaySchedules returns the schedules of one day together with the active
	// employees that can still be assigned.
	GetDaySchedules(ctx context.Context, date string) (DayScheduleResponse, error)
}
