package leave

import (
	"time"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     string
	Status     LeaveRequestStatus
	AppliedAt  time.Time
	ApprovedBy *string
	ApprovedAt *time.Time
	Comments   *string
	UpdatedAt  time.Time
}

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypeOther     LeaveType = "other"
)

var LeaveTypeValues = []string{
	string(LeaveTypeAnnual),
	string(LeaveTypeSick),
	string(LeaveTypePersonal),
	string(LeaveTypeMaternity),
	string(LeaveTypeOther),
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

var LeaveRequestStatusValues = []string{
	string(LeaveRequestStatusPending),
	string(LeaveRequestStatusApproved),
	string(LeaveRequestStatusRejected),
}

// Decide moves the request to approved or rejected and stamps the decision.
// Repeating the same decision re-stamps it; switching an already decided
// request to the opposite outcome returns ErrLeaveRequestAlreadyProcessed.
func (r *LeaveRequest) Decide(status LeaveRequestStatus, by string, comments *string, at time.Time) error {
	if status != LeaveRequestStatusApproved && status != LeaveRequestStatusRejected {
		return ErrInvalidTransition
	}
	if r.Status != LeaveRequestStatusPending && r.Status != status {
		return ErrLeaveRequestAlreadyProcessed
	}

	r.Status = status
	r.ApprovedBy = &by
	r.ApprovedAt = &at
	r.Comments = comments
	r.UpdatedAt = at
	return nil
}
