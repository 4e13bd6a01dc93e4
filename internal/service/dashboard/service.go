package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/analysis"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		now:                 time.Now,
	}
}

// parseDate parses YYYY-MM-DD format, defaults to today
func (s *DashboardServiceImpl) parseDate(date string) (time.Time, error) {
	if date == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return parsed, nil
}

// attendanceStats counts the day against the active headcount. Everyone
// active who is neither present nor late counts as absent, floored at zero.
func attendanceStats(day time.Time, stats *dashboard.AttendanceStats, active int64) dashboard.AttendanceStatsResponse {
	absent := active - stats.Normal - stats.Late
	if absent < 0 {
		absent = 0
	}
	return dashboard.AttendanceStatsResponse{
		Present:     stats.Normal,
		Late:        stats.Late,
		Absent:      absent,
		Headcount:   active,
		PresentRate: analysis.Percent(int(stats.Normal), int(active)),
		LateRate:    analysis.Percent(int(stats.Late), int(active)),
		AbsentRate:  analysis.Percent(int(absent), int(active)),
		Date:        day.Format(validator.DateLayout),
	}
}

func (s *DashboardServiceImpl) load(ctx context.Context, day time.Time) (*dashboard.EmployeeSummaryStats, *dashboard.AttendanceStats, *dashboard.LeaveStats, error) {
	var (
		employees *dashboard.EmployeeSummaryStats
		daily     *dashboard.AttendanceStats
		leaves    *dashboard.LeaveStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.GetEmployeeSummary(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		daily, err = s.GetAttendanceStatsByDay(gCtx, day)
		return err
	})

	g.Go(func() error {
		var err error
		leaves, err = s.GetLeaveStats(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return employees, daily, leaves, nil
}

// GetDashboard returns combined dashboard data using parallel goroutines
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	day, _ := s.parseDate("")

	employees, daily, leaves, err := s.load(ctx, day)
	if err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		EmployeeSummary: dashboard.EmployeeSummaryResponse{
			TotalEmployee:    employees.Total,
			ActiveEmployee:   employees.Active,
			InactiveEmployee: employees.Inactive,
		},
		AttendanceStats: attendanceStats(day, daily, employees.Active),
		LeaveStats: dashboard.LeaveStatsResponse{
			Pending:  leaves.Pending,
			Approved: leaves.Approved,
			Rejected: leaves.Rejected,
		},
		Date: day.Format(validator.DateLayout),
	}, nil
}

// GetDailyAttendanceStats returns attendance stats with percentages for a specific day
func (s *DashboardServiceImpl) GetDailyAttendanceStats(ctx context.Context, date string) (*dashboard.AttendanceStatsResponse, error) {
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	employees, daily, _, err := s.load(ctx, day)
	if err != nil {
		return nil, err
	}

	stats := attendanceStats(day, daily, employees.Active)
	return &stats, nil
}
