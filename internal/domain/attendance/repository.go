package attendance

import (
	"context"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceRecord, error)
}
