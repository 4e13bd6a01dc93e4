package schedule

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	ID         *string `json:"id,omitempty"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Shift      string  `json:"shift"`
}

func (r *CreateScheduleRequest) Validate() error {
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
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Shift, ShiftValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: " + strings.Join(ShiftValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleRequest struct {
	ID         string  `json:"-"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`
	Shift      *string `json:"shift,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must not be empty",
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
	if r.Shift != nil && !validator.IsInSlice(*r.Shift, ShiftValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: " + strings.Join(ShiftValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply merges the non-nil fields into s. Changing the shift also resets the
// time window so rest never carries times.
func (r UpdateScheduleRequest) Apply(s *Schedule) {
	if r.EmployeeID != nil {
		s.EmployeeID = *r.EmployeeID
	}
	if r.Date != nil {
		if d, ok := validator.IsValidDate(*r.Date); ok {
			s.Date = d
		}
	}
	if r.Shift != nil {
		s.WithShift(Shift(*r.Shift))
	}
}

type ScheduleFilter struct {
	Date       *string `json:"date,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Shift      *string `json:"shift,omitempty"`
}

func (f *ScheduleFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}
	if f.StartDate != nil && f.EndDate != nil && *f.EndDate < *f.StartDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if f.Shift != nil && !validator.IsInSlice(*f.Shift, ShiftValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: " + strings.Join(ShiftValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Matches reports whether s passes every set criterion.
func (f ScheduleFilter) Matches(s Schedule) bool {
	day := s.Date.Format(validator.DateLayout)
	if f.Date != nil && day != *f.Date {
		return false
	}
	if f.StartDate != nil && day < *f.StartDate {
		return false
	}
	if f.EndDate != nil && day > *f.EndDate {
		return false
	}
	if f.EmployeeID != nil && s.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.Shift != nil && string(s.Shift) != *f.Shift {
		return false
	}
	return true
}

type ScheduleResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	Shift        string  `json:"shift"`
	ShiftLabel   string  `json:"shift_label"`
	ShiftColor   string  `json:"shift_color"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ListScheduleResponse struct {
	TotalCount int                `json:"total_count"`
	Schedules  []ScheduleResponse `json:"schedules"`
}

type EmployeeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DayScheduleResponse struct {
	Date               string             `json:"date"`
	Schedules          []ScheduleResponse `json:"schedules"`
	AvailableEmployees []EmployeeOption   `json:"available_employees"`
}

func (s Schedule) ToResponse(employeeName, shiftLabel, shiftColor string) ScheduleResponse {
	return ScheduleResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: employeeName,
		Date:         s.Date.Format(validator.DateLayout),
		Shift:        string(s.Shift),
		ShiftLabel:   shiftLabel,
		ShiftColor:   shiftColor,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}
