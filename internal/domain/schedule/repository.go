package schedule

import "context"

type ScheduleRepository interface {
	Create(ctx context.Context, s Schedule) (Schedule, error)
	GetByID(ctx context.Context, id string) (Schedule, error)
	List(ctx context.Context, filter ScheduleFilter) ([]Schedule, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) (Schedule, error)
	Delete(ctx context.Context, id string) error
}
