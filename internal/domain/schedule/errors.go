package schedule

import "errors"

var (
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrScheduleAlreadyExists = errors.New("schedule already exists")
	ErrScheduleConflict      = errors.New("employee already has a schedule on this date")
)
