package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
)

type leaveRequestRepositoryImpl struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: store}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		if s.leaveRequests.has(request.ID) {
			return leave.ErrLeaveRequestAlreadyExists
		}
		if !s.employees.has(request.EmployeeID) {
			return employee.ErrEmployeeNotFound
		}

		now := s.now()
		if request.AppliedAt.IsZero() {
			request.AppliedAt = now
		}
		request.UpdatedAt = now

		s.leaveRequests.insert(request)
		tx.record(CollectionLeaveRequests, ActionCreated, request.ID)
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	var (
		lr leave.LeaveRequest
		ok bool
	)
	r.store.read(func() {
		lr, ok = r.store.leaveRequests.get(id)
	})
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	r.store.read(func() {
		requests = r.store.leaveRequests.filter(filter.Matches)
	})
	return requests, nil
}

// Update merges req into the request. Only comments may change once the
// request has been approved or rejected.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id string, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequest, error) {
	var updated leave.LeaveRequest
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		current, ok := s.leaveRequests.get(id)
		if !ok {
			return leave.ErrLeaveRequestNotFound
		}
		if req.ChangesRequest() && current.Status != leave.LeaveRequestStatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		next := current
		if err := req.Apply(&next); err != nil {
			return err
		}
		next.UpdatedAt = s.now()

		s.leaveRequests.replace(next)
		tx.record(CollectionLeaveRequests, ActionUpdated, id)
		updated = next
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}

func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, status leave.LeaveRequestStatus, by string, comments *string, at time.Time) (leave.LeaveRequest, error) {
	var updated leave.LeaveRequest
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		current, ok := s.leaveRequests.get(id)
		if !ok {
			return leave.ErrLeaveRequestNotFound
		}

		next := current
		if err := next.Decide(status, by, comments, at); err != nil {
			return err
		}

		s.leaveRequests.replace(next)
		action := ActionApproved
		if status == leave.LeaveRequestStatusRejected {
			action = ActionRejected
		}
		tx.record(CollectionLeaveRequests, action, id)
		updated = next
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}
