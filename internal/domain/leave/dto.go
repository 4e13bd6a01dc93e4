package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	ID         *string `json:"id,omitempty"`
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     string  `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
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

	if !validator.IsInSlice(r.Type, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(LeaveTypeValues, ", "),
		})
	}

	errs = append(errs, validateRange(&r.StartDate, &r.EndDate)...)

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveRequestRequest struct {
	ID        string  `json:"-"`
	Type      *string `json:"type,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Comments  *string `json:"comments,omitempty"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Type != nil && !validator.IsInSlice(*r.Type, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(LeaveTypeValues, ", "),
		})
	}

	errs = append(errs, validateRange(r.StartDate, r.EndDate)...)

	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ChangesRequest reports whether the update touches what the employee asked
// for, as opposed to reviewer comments only.
func (r UpdateLeaveRequestRequest) ChangesRequest() bool {
	return r.Type != nil || r.StartDate != nil || r.EndDate != nil || r.Reason != nil
}

// Apply merges the non-nil fields into lr and recomputes Days.
func (r UpdateLeaveRequestRequest) Apply(lr *LeaveRequest) error {
	start, end := lr.StartDate, lr.EndDate
	if r.StartDate != nil {
		if d, ok := validator.IsValidDate(*r.StartDate); ok {
			start = d
		}
	}
	if r.EndDate != nil {
		if d, ok := validator.IsValidDate(*r.EndDate); ok {
			end = d
		}
	}
	days, err := CalculateDays(start, end)
	if err != nil {
		return err
	}

	lr.StartDate, lr.EndDate, lr.Days = start, end, days
	if r.Type != nil {
		lr.Type = LeaveType(*r.Type)
	}
	if r.Reason != nil {
		lr.Reason = *r.Reason
	}
	if r.Comments != nil {
		lr.Comments = r.Comments
	}
	return nil
}

func validateRange(startDate, endDate *string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	var start, end time.Time
	var startOK, endOK bool

	if startDate != nil {
		if start, startOK = validator.IsValidDate(*startDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if endDate != nil {
		if end, endOK = validator.IsValidDate(*endDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	return errs
}

// DecisionRequest approves or rejects a request.
type DecisionRequest struct {
	ID         string  `json:"-"`
	ApprovedBy string  `json:"approved_by"`
	Comments   *string `json:"comments,omitempty"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.ApprovedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "approved_by",
			Message: "approved_by is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatusTabAll selects every request regardless of status.
const StatusTabAll = "all"

type LeaveRequestFilter struct {
	Status     *string `json:"status,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Type       *string `json:"type,omitempty"`
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status == StatusTabAll {
		f.Status = nil
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, LeaveRequestStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: all, " + strings.Join(LeaveRequestStatusValues, ", "),
		})
	}
	if f.Type != nil && !validator.IsInSlice(*f.Type, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(LeaveTypeValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (f LeaveRequestFilter) Matches(lr LeaveRequest) bool {
	if f.Status != nil && *f.Status != StatusTabAll && string(lr.Status) != *f.Status {
		return false
	}
	if f.EmployeeID != nil && lr.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.Type != nil && string(lr.Type) != *f.Type {
		return false
	}
	return true
}

type LeaveRequestResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	DepartmentName string  `json:"department_name"`
	Type           string  `json:"type"`
	TypeLabel      string  `json:"type_label"`
	TypeColor      string  `json:"type_color"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Days           int     `json:"days"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	StatusLabel    string  `json:"status_label"`
	StatusColor    string  `json:"status_color"`
	AppliedAt      string  `json:"applied_at"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	ApprovedAt     *string `json:"approved_at,omitempty"`
	Comments       *string `json:"comments,omitempty"`
}

type ListLeaveRequestResponse struct {
	TotalCount    int                    `json:"total_count"`
	LeaveRequests []LeaveRequestResponse `json:"leave_requests"`
}

// LeaveRequestCounts feeds the status tabs.
type LeaveRequestCounts struct {
	All      int `json:"all"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Add counts one request.
func (c *LeaveRequestCounts) Add(status LeaveRequestStatus) {
	c.All++
	switch status {
	case LeaveRequestStatusPending:
		c.Pending++
	case LeaveRequestStatusApproved:
		c.Approved++
	case LeaveRequestStatusRejected:
		c.Rejected++
	}
}

func (lr LeaveRequest) ToResponse() LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:         lr.ID,
		EmployeeID: lr.EmployeeID,
		Type:       string(lr.Type),
		StartDate:  lr.StartDate.Format(validator.DateLayout),
		EndDate:    lr.EndDate.Format(validator.DateLayout),
		Days:       lr.Days,
		Reason:     lr.Reason,
		Status:     string(lr.Status),
		AppliedAt:  lr.AppliedAt.Format(time.RFC3339),
		ApprovedBy: lr.ApprovedBy,
		Comments:   lr.Comments,
	}
	if lr.ApprovedAt != nil {
		approvedAt := lr.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}
