package leave

import (
	"context"
)

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	UpdateLeaveRequest(ctx context.Context, req UpdateLeaveRequestRequest) (LeaveRequestResponse, error)
	ApproveLeaveRequest(ctx context.Context, req DecisionRequest) (LeaveRequestResponse, error)
	RejectLeaveRequest(ctx context.Context, req DecisionRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaveRequest(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
	CountByStatus(ctx context.Context) (LeaveRequestCounts, error)
}
