package attendance

import (
	"time"
)

type AttendanceRecord struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckInTime   *string // "HH:MM"
	CheckOutTime  *string
	WorkHours     float64
	Status        AttendanceStatus
	OvertimeHours *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AttendanceStatus string

const (
	AttendanceStatusNormal     AttendanceStatus = "normal"
	AttendanceStatusLate       AttendanceStatus = "late"
	AttendanceStatusEarlyLeave AttendanceStatus = "early_leave"
	AttendanceStatusAbsent     AttendanceStatus = "absent"
	AttendanceStatusOvertime   AttendanceStatus = "overtime"
)

var AttendanceStatusValues = []string{
	string(AttendanceStatusNormal),
	string(AttendanceStatusLate),
	string(AttendanceStatusEarlyLeave),
	string(AttendanceStatusAbsent),
	string(AttendanceStatusOvertime),
}

// Present reports whether the employee showed up at all.
func (s AttendanceStatus) Present() bool {
	return s != AttendanceStatusAbsent
}

// Punctual reports whether the employee arrived on time.
func (s AttendanceStatus) Punctual() bool {
	return s.Present() && s != AttendanceStatusLate
}

// Overtime returns the overtime hours, zero when unset.
func (r AttendanceRecord) Overtime() float64 {
	if r.OvertimeHours == nil {
		return 0
	}
	return *r.OvertimeHours
}
