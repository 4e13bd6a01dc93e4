package report

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORT
// ========================================

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var FormatValues = []string{
	string(FormatJSON),
	string(FormatCSV),
	string(FormatXLSX),
	string(FormatPDF),
}

// DefaultRangeDays is the look-back window used when no dates are given.
const DefaultRangeDays = 30

type AttendanceReportRequest struct {
	DepartmentID *string `json:"department_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	Format       string  `json:"format"`
	Locale       string  `json:"locale"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Format == "" {
		r.Format = string(FormatJSON)
	}
	if !validator.IsInSlice(r.Format, FormatValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: " + strings.Join(FormatValues, ", "),
		})
	}

	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		r.DepartmentID = nil
	}

	var start, end time.Time
	var startOK, endOK bool
	if r.StartDate != nil {
		if start, startOK = validator.IsValidDate(*r.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if end, endOK = validator.IsValidDate(*r.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range resolves the inclusive day range, defaulting to the last
// DefaultRangeDays days ending today.
func (r AttendanceReportRequest) Range(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start, end := today.AddDate(0, 0, -DefaultRangeDays), today
	if r.EndDate != nil {
		if d, ok := validator.IsValidDate(*r.EndDate); ok {
			end = d
		}
	}
	if r.StartDate != nil {
		if d, ok := validator.IsValidDate(*r.StartDate); ok {
			start = d
		}
	} else if r.EndDate != nil {
		start = end.AddDate(0, 0, -DefaultRangeDays)
	}
	return start, end
}

// AttendanceReportRow is one record joined with its employee. Employees that
// no longer exist render as the unknown label.
type AttendanceReportRow struct {
	RecordID       string  `json:"record_id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	EmployeeCode   string  `json:"employee_code"`
	DepartmentName string  `json:"department_name"`
	Date           string  `json:"date"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	WorkHours      float64 `json:"work_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	Status         string  `json:"status"`
	StatusLabel    string  `json:"status_label"`
	StatusColor    string  `json:"status_color"`
}

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Count  int    `json:"count"`
}

type AttendanceReportResponse struct {
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	DepartmentID *string               `json:"department_id,omitempty"`
	Locale       string                `json:"locale"`
	GeneratedAt  string                `json:"generated_at"`
	TotalCount   int                   `json:"total_count"`
	StatusCounts []StatusCount         `json:"status_counts"`
	Rows         []AttendanceReportRow `json:"rows"`
}

// Columns returns the localized table header shared by every export format.
func Columns(locale catalog.Locale) []string {
	if locale == catalog.LocaleZH {
		return []string{"姓名", "工号", "部门", "日期", "签到时间", "签退时间", "工作时长(h)", "加班时长(h)", "状态"}
	}
	return []string{"Name", "Employee Code", "Department", "Date", "Check-in", "Check-out", "Work Hours (h)", "Overtime (h)", "Status"}
}

// Title returns the localized report title.
func Title(locale catalog.Locale) string {
	if locale == catalog.LocaleZH {
		return "考勤报表"
	}
	return "Attendance Report"
}

// Cells renders the row in column order; missing times become "-".
func (r AttendanceReportRow) Cells() []any {
	return []any{
		r.EmployeeName,
		r.EmployeeCode,
		r.DepartmentName,
		r.Date,
		orDash(r.CheckInTime),
		orDash(r.CheckOutTime),
		r.WorkHours,
		r.OvertimeHours,
		r.StatusLabel,
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
