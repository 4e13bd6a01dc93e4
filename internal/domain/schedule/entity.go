package schedule

import (
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
)

type Schedule struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Shift      Shift
	StartTime  *string // "HH:MM", nil when Shift is rest
	EndTime    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
	ShiftRest      Shift = "rest"
)

// ShiftRotation is the order used when rotating shifts across days.
var ShiftRotation = []Shift{ShiftMorning, ShiftAfternoon, ShiftNight, ShiftRest}

var ShiftValues = []string{
	string(ShiftMorning),
	string(ShiftAfternoon),
	string(ShiftNight),
	string(ShiftRest),
}

// Window returns the start and end time of the shift, both nil for rest.
func (s Shift) Window() (start, end *string) {
	e, ok := catalog.Lookup(catalog.GroupShift, string(s))
	if !ok || e.StartTime == nil || e.EndTime == nil {
		return nil, nil
	}
	st, et := *e.StartTime, *e.EndTime
	return &st, &et
}

// WithShift sets the shift and the matching time window.
func (s *Schedule) WithShift(shift Shift) {
	s.Shift = shift
	s.StartTime, s.EndTime = shift.Window()
}
