package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateAttendanceRequest struct {
	ID            *string  `json:"id,omitempty"`
	EmployeeID    string   `json:"employee_id"`
	Date          string   `json:"date"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	WorkHours     float64  `json:"work_hours"`
	Status        string   `json:"status"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID != nil && validator.IsEmpty(*r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must not be empty when provided",
		})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Status, AttendanceStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(AttendanceStatusValues, ", "),
		})
	}

	errs = append(errs, validateTimes(r.CheckInTime, r.CheckOutTime)...)
	errs = append(errs, validateHours(&r.WorkHours, r.OvertimeHours)...)

	if AttendanceStatus(r.Status) == AttendanceStatusAbsent && (r.CheckInTime != nil || r.CheckOutTime != nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "absent records must not carry check-in or check-out times",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID            string   `json:"-"`
	Date          *string  `json:"date,omitempty"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	WorkHours     *float64 `json:"work_hours,omitempty"`
	Status        *string  `json:"status,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, AttendanceStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(AttendanceStatusValues, ", "),
		})
	}

	errs = append(errs, validateTimes(r.CheckInTime, r.CheckOutTime)...)
	errs = append(errs, validateHours(r.WorkHours, r.OvertimeHours)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply merges the non-nil fields into rec. Switching to absent clears the times;
// setting times or hours on a record that stays absent is rejected.
func (r UpdateAttendanceRequest) Apply(rec *AttendanceRecord) error {
	if r.Date != nil {
		if d, ok := validator.IsValidDate(*r.Date); ok {
			rec.Date = d
		}
	}
	if r.CheckInTime != nil {
		rec.CheckInTime = r.CheckInTime
	}
	if r.CheckOutTime != nil {
		rec.CheckOutTime = r.CheckOutTime
	}
	if r.WorkHours != nil {
		rec.WorkHours = *r.WorkHours
	}
	if r.OvertimeHours != nil {
		rec.OvertimeHours = r.OvertimeHours
	}
	if r.Status != nil {
		rec.Status = AttendanceStatus(*r.Status)
		if rec.Status == AttendanceStatusAbsent {
			rec.CheckInTime = nil
			rec.CheckOutTime = nil
			rec.WorkHours = 0
		}
	}

	if rec.Status == AttendanceStatusAbsent && (rec.CheckInTime != nil || rec.CheckOutTime != nil || rec.WorkHours != 0) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "absent records must not carry check-in or check-out times or work hours",
		}}
	}
	return nil
}

func validateTimes(checkIn, checkOut *string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if checkIn != nil && !validator.IsValidClock(*checkIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM format",
		})
	}
	if checkOut != nil && !validator.IsValidClock(*checkOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be in HH:MM format",
		})
	}
	return errs
}

func validateHours(workHours, overtimeHours *float64) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if workHours != nil && (*workHours < 0 || *workHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_hours",
			Message: "work_hours must be between 0 and 24",
		})
	}
	if overtimeHours != nil && (*overtimeHours < 0 || *overtimeHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hours",
			Message: "overtime_hours must be between 0 and 24",
		})
	}
	return errs
}

type AttendanceFilter struct {
	EmployeeID   *string  `json:"employee_id,omitempty"`
	EmployeeIDs  []string `json:"-"` // resolved from a department filter
	DepartmentID *string  `json:"department_id,omitempty"`
	Department   *string  `json:"department,omitempty"` // exact department name
	Status       *string  `json:"status,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, AttendanceStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(AttendanceStatusValues, ", "),
		})
	}
	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.StartDate != nil && f.EndDate != nil && *f.EndDate < *f.StartDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Matches reports whether rec passes every set criterion. DepartmentID is
// resolved by the service into EmployeeIDs and is not checked here.
func (f AttendanceFilter) Matches(rec AttendanceRecord) bool {
	day := rec.Date.Format(validator.DateLayout)
	if f.EmployeeID != nil && rec.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.EmployeeIDs != nil && !validator.IsInSlice(rec.EmployeeID, f.EmployeeIDs) {
		return false
	}
	if f.Status != nil && string(rec.Status) != *f.Status {
		return false
	}
	if f.StartDate != nil && day < *f.StartDate {
		return false
	}
	if f.EndDate != nil && day > *f.EndDate {
		return false
	}
	return true
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  string   `json:"employee_name"`
	Date          string   `json:"date"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	WorkHours     float64  `json:"work_hours"`
	Status        string   `json:"status"`
	StatusLabel   string   `json:"status_label"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type ListAttendanceResponse struct {
	TotalCount int                  `json:"total_count"`
	Records    []AttendanceResponse `json:"records"`
}

func (r AttendanceRecord) ToResponse(employeeName, statusLabel string) AttendanceResponse {
	return AttendanceResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  employeeName,
		Date:          r.Date.Format(validator.DateLayout),
		CheckInTime:   r.CheckInTime,
		CheckOutTime:  r.CheckOutTime,
		WorkHours:     r.WorkHours,
		Status:        string(r.Status),
		StatusLabel:   statusLabel,
		OvertimeHours: r.OvertimeHours,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
}
