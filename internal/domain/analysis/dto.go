package analysis

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

// DefaultRangeDays is the look-back window used when no dates are given.
const DefaultRangeDays = 30

// MaxRangeDays bounds the inclusive span of one analysis.
const MaxRangeDays = 366

type AttendanceAnalysisRequest struct {
	DepartmentID *string `json:"department_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	Locale       string  `json:"locale"`
}

func (r *AttendanceAnalysisRequest) Validate() error {
	var errs validator.ValidationErrors

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
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range resolves the inclusive day range. Without dates it covers the
// DefaultRangeDays days up to and including today.
func (r AttendanceAnalysisRequest) Range(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today
	if r.EndDate != nil {
		if d, ok := validator.IsValidDate(*r.EndDate); ok {
			end = d
		}
	}
	start := end.AddDate(0, 0, -(DefaultRangeDays - 1))
	if r.StartDate != nil {
		if d, ok := validator.IsValidDate(*r.StartDate); ok {
			start = d
		}
	}
	return start, end
}

// CheckRange rejects a resolved range that is inverted or longer than MaxRangeDays.
func CheckRange(start, end time.Time) error {
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	if end.After(start.AddDate(0, 0, MaxRangeDays-1)) {
		return validator.ValidationErrors{{
			Field:   "start_date",
			Message: fmt.Sprintf("date range must not exceed %d days", MaxRangeDays),
		}}
	}
	return nil
}

type AttendanceAnalysisResponse struct {
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DepartmentID *string `json:"department_id,omitempty"`
	Locale       string  `json:"locale"`

	Summary            Summary           `json:"summary"`
	DailyTrend         []DailyTrendPoint `json:"daily_trend"`
	DepartmentStats    []DepartmentStat  `json:"department_stats"`
	StatusDistribution []StatusShare     `json:"status_distribution"`
}

// Summary holds the headline cards. Rates are percentages rounded to one decimal.
type Summary struct {
	TotalRecords        int     `json:"total_records"`
	AttendanceRate      float64 `json:"attendance_rate"`
	AttendanceOnTarget  bool    `json:"attendance_on_target"`
	PunctualityRate     float64 `json:"punctuality_rate"`
	PunctualityOnTarget bool    `json:"punctuality_on_target"`
	OvertimeHours       float64 `json:"overtime_hours"`
	AverageWorkHours    float64 `json:"average_work_hours"`
}

// DailyTrendPoint covers one weekday of the range.
type DailyTrendPoint struct {
	Date            string  `json:"date"`
	Label           string  `json:"label"` // MM-DD
	Records         int     `json:"records"`
	AttendanceRate  float64 `json:"attendance_rate"`
	PunctualityRate float64 `json:"punctuality_rate"`
}

// DepartmentStat counts attendance records in range for one department.
type DepartmentStat struct {
	DepartmentID   string  `json:"department_id"`
	Department     string  `json:"department"`
	Headcount      int     `json:"headcount"`
	Total          int     `json:"total"`
	Present        int     `json:"present"`
	Late           int     `json:"late"`
	Absent         int     `json:"absent"`
	AttendanceRate float64 `json:"attendance_rate"`
	OnTarget       bool    `json:"on_target"`
}

type StatusShare struct {
	Status  string  `json:"status"`
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}
