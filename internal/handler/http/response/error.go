package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/analysis"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentAlreadyExists):
		Conflict(w, "Department already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeAlreadyExists):
		Conflict(w, "Employee already exists")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrScheduleAlreadyExists):
		Conflict(w, "Schedule already exists")
	case errors.Is(err, schedule.ErrScheduleConflict):
		Conflict(w, "Employee already has a schedule on this date")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyExists):
		Conflict(w, "Attendance record already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyExists):
		Conflict(w, "Leave request already exists")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Invalid leave request status transition")
	case errors.Is(err, leave.ErrInvalidDateRange):
		UnprocessableEntity(w, "End date must not be before start date")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		UnprocessableEntity(w, "End date must not be before start date")
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported report format", nil)

	// Analysis domain errors
	case errors.Is(err, analysis.ErrInvalidDateRange):
		UnprocessableEntity(w, "End date must not be before start date")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
