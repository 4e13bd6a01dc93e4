package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequestRequest) (LeaveRequest, error)
	// Decide applies an approve/reject transition atomically.
	Decide(ctx context.Context, id string, status LeaveRequestStatus, by string, comments *string, at time.Time) (LeaveRequest, error)
}
