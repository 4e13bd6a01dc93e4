package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyExists    = errors.New("leave request already exists")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidTransition            = errors.New("invalid leave request status transition")
	ErrInvalidDateRange             = errors.New("end date is before start date")
)
