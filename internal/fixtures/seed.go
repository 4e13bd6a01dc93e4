package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
)

// Seeded reports how many records Seed loaded per collection.
type Seeded struct {
	Departments   int
	Employees     int
	Schedules     int
	Attendance    int
	LeaveRequests int
}

// Seed loads the default departments and employees plus generated schedules,
// attendance and leave requests into store. It is meant for demos and tests,
// never for a store holding real records.
func Seed(ctx context.Context, store *memory.Store, now time.Time, rng *rand.Rand) (*Seeded, error) {
	deptRepo := memory.NewDepartmentRepository(store)
	empRepo := memory.NewEmployeeRepository(store)
	scheduleRepo := memory.NewScheduleRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRepo := memory.NewLeaveRequestRepository(store)

	seeded := &Seeded{}

	for _, d := range SeedDepartments() {
		if _, err := deptRepo.Create(ctx, d); err != nil {
			return nil, fmt.Errorf("seed department %s: %w", d.ID, err)
		}
		seeded.Departments++
	}

	employees := SeedEmployees()
	for _, e := range employees {
		e.CreatedAt = now
		if _, err := empRepo.Create(ctx, e); err != nil {
			return nil, fmt.Errorf("seed employee %s: %w", e.ID, err)
		}
		seeded.Employees++
	}
	ids := employeeIDs(employees)

	for _, s := range GenerateSchedules(now, ids) {
		if _, err := scheduleRepo.Create(ctx, s); err != nil {
			return nil, fmt.Errorf("seed schedule %s: %w", s.ID, err)
		}
		seeded.Schedules++
	}

	for _, r := range GenerateAttendance(now, ids, rng) {
		if _, err := attendanceRepo.Create(ctx, r); err != nil {
			return nil, fmt.Errorf("seed attendance %s: %w", r.ID, err)
		}
		seeded.Attendance++
	}

	for _, lr := range GenerateLeaveRequests(now, ids, rng) {
		if _, err := leaveRepo.Create(ctx, lr); err != nil {
			return nil, fmt.Errorf("seed leave request %s: %w", lr.ID, err)
		}
		seeded.LeaveRequests++
	}

	slog.Info("Seeded store with mock data",
		"departments", seeded.Departments,
		"employees", seeded.Employees,
		"schedules", seeded.Schedules,
		"attendance_records", seeded.Attendance,
		"leave_requests", seeded.LeaveRequests,
	)

	return seeded, nil
}
