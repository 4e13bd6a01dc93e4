package fixtures

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

const (
	ScheduleDays      = 30
	AttendanceDays    = 30
	LeaveRequestCount = 8
	DefaultApprover   = "Administrator"
)

// ==========================================
// SCHEDULES
// ==========================================

// GenerateSchedules rotates shifts over the next ScheduleDays days starting
// today. Each employee is offset by its position so shifts are staggered.
func GenerateSchedules(now time.Time, employeeIDs []string) []schedule.Schedule {
	today := startOfDay(now)
	schedules := make([]schedule.Schedule, 0, ScheduleDays*len(employeeIDs))

	for offset := 0; offset < ScheduleDays; offset++ {
		date := today.AddDate(0, 0, offset)
		for idx, employeeID := range employeeIDs {
			sc := schedule.Schedule{
				ID:         fmt.Sprintf("schedule-%s-%d", employeeID, offset),
				EmployeeID: employeeID,
				Date:       date,
			}
			sc.WithShift(schedule.ShiftRotation[(offset+idx)%len(schedule.ShiftRotation)])
			schedules = append(schedules, sc)
		}
	}
	return schedules
}

// ==========================================
// ATTENDANCE
// ==========================================

// GenerateAttendance produces one record per employee for each weekday of the
// AttendanceDays days before today.
func GenerateAttendance(now time.Time, employeeIDs []string, rng *rand.Rand) []attendance.AttendanceRecord {
	today := startOfDay(now)
	var records []attendance.AttendanceRecord

	for offset := 1; offset <= AttendanceDays; offset++ {
		date := today.AddDate(0, 0, -offset)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for _, employeeID := range employeeIDs {
			rec := randomRecord(rng.Float64())
			rec.ID = fmt.Sprintf("record-%s-%s", employeeID, date.Format(validator.DateLayout))
			rec.EmployeeID = employeeID
			rec.Date = date
			records = append(records, rec)
		}
	}
	return records
}

// randomRecord maps a uniform sample onto the status bands:
// late 10%, early leave 5%, overtime 5%, absent 5%, normal otherwise.
func randomRecord(sample float64) attendance.AttendanceRecord {
	rec := attendance.AttendanceRecord{
		Status:       attendance.AttendanceStatusNormal,
		CheckInTime:  strPtr("09:00"),
		CheckOutTime: strPtr("18:00"),
		WorkHours:    8,
	}
	overtime := 0.0

	switch {
	case sample < 0.10:
		rec.Status = attendance.AttendanceStatusLate
		rec.CheckInTime = strPtr("09:30")
	case sample < 0.15:
		rec.Status = attendance.AttendanceStatusEarlyLeave
		rec.CheckOutTime = strPtr("17:30")
		rec.WorkHours = 7.5
	case sample < 0.20:
		rec.Status = attendance.AttendanceStatusOvertime
		rec.CheckOutTime = strPtr("20:00")
		rec.WorkHours = 10
		overtime = 2
	case sample < 0.25:
		rec.Status = attendance.AttendanceStatusAbsent
		rec.CheckInTime = nil
		rec.CheckOutTime = nil
		rec.WorkHours = 0
	}

	rec.OvertimeHours = float64Ptr(overtime)
	return rec
}

// ==========================================
// LEAVE REQUESTS
// ==========================================

var leaveReasons = map[leave.LeaveType]string{
	leave.LeaveTypeAnnual:   "Annual leave",
	leave.LeaveTypeSick:     "Feeling unwell and need rest",
	leave.LeaveTypePersonal: "Family matters",
}

var decisionComments = map[leave.LeaveRequestStatus]string{
	leave.LeaveRequestStatusApproved: "Leave approved",
	leave.LeaveRequestStatusRejected: "Too busy right now, request declined",
}

// GenerateLeaveRequests cycles employees, types and statuses over
// LeaveRequestCount requests that start within the last 30 days.
func GenerateLeaveRequests(now time.Time, employeeIDs []string, rng *rand.Rand) []leave.LeaveRequest {
	if len(employeeIDs) == 0 {
		return nil
	}

	today := startOfDay(now)
	types := []leave.LeaveType{leave.LeaveTypeAnnual, leave.LeaveTypeSick, leave.LeaveTypePersonal}
	statuses := []leave.LeaveRequestStatus{
		leave.LeaveRequestStatusPending,
		leave.LeaveRequestStatusApproved,
		leave.LeaveRequestStatusRejected,
	}

	requests := make([]leave.LeaveRequest, 0, LeaveRequestCount)
	for i := 0; i < LeaveRequestCount; i++ {
		leaveType := types[i%len(types)]
		status := statuses[i%len(statuses)]
		start := today.AddDate(0, 0, -rng.IntN(30))
		days := rng.IntN(5) + 1
		appliedAt := start.AddDate(0, 0, -rng.IntN(7))

		lr := leave.LeaveRequest{
			ID:         fmt.Sprintf("leave-%d", i+1),
			EmployeeID: employeeIDs[i%len(employeeIDs)],
			Type:       leaveType,
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, days-1),
			Days:       days,
			Reason:     leaveReasons[leaveType],
			Status:     status,
			AppliedAt:  appliedAt,
			UpdatedAt:  appliedAt,
		}
		if status != leave.LeaveRequestStatusPending {
			approvedAt := start.AddDate(0, 0, -rng.IntN(5))
			lr.ApprovedBy = strPtr(DefaultApprover)
			lr.ApprovedAt = &approvedAt
			lr.Comments = strPtr(decisionComments[status])
			lr.UpdatedAt = approvedAt
		}
		requests = append(requests, lr)
	}
	return requests
}
