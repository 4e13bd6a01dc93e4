package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type dashboardRepositoryImpl struct {
	store *Store
}

func NewDashboardRepository(store *Store) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{store: store}
}

func (r *dashboardRepositoryImpl) GetEmployeeSummary(ctx context.Context) (*dashboard.EmployeeSummaryStats, error) {
	stats := &dashboard.EmployeeSummaryStats{}
	r.store.read(func() {
		for _, e := range r.store.employees.items {
			stats.Total++
			if e.IsActive() {
				stats.Active++
			} else {
				stats.Inactive++
			}
		}
	})
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetAttendanceStatsByDay(ctx context.Context, date time.Time) (*dashboard.AttendanceStats, error) {
	day := date.Format(validator.DateLayout)
	stats := &dashboard.AttendanceStats{}
	r.store.read(func() {
		for _, rec := range r.store.attendance.items {
			if rec.Date.Format(validator.DateLayout) != day {
				continue
			}
			switch rec.Status {
			case attendance.AttendanceStatusNormal:
				stats.Normal++
			case attendance.AttendanceStatusLate:
				stats.Late++
			case attendance.AttendanceStatusAbsent:
				stats.Absent++
			default:
				stats.Other++
			}
		}
	})
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetLeaveStats(ctx context.Context) (*dashboard.LeaveStats, error) {
	stats := &dashboard.LeaveStats{}
	r.store.read(func() {
		for _, lr := range r.store.leaveRequests.items {
			switch lr.Status {
			case leave.LeaveRequestStatusPending:
				stats.Pending++
			case leave.LeaveRequestStatusApproved:
				stats.Approved++
			case leave.LeaveRequestStatusRejected:
				stats.Rejected++
			}
		}
	})
	return stats, nil
}
