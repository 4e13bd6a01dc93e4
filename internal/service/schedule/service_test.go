package schedule

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) schedule.ScheduleService {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	deptRepo := memory.NewDepartmentRepository(store)
	for _, d := range fixtures.SeedDepartments() {
		_, err := deptRepo.Create(ctx, d)
		require.NoError(t, err)
	}
	empRepo := memory.NewEmployeeRepository(store)
	for _, e := range fixtures.SeedEmployees() {
		_, err := empRepo.Create(ctx, e)
		require.NoError(t, err)
	}
	return NewScheduleService(memory.NewScheduleRepository(store), empRepo)
}

// ===== SCHEDULE SERVICE TESTS =====

func TestScheduleService_Create_DerivesWindow(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{EmployeeID: "1", Date: "2024-03-20", Shift: "afternoon"})
	require.NoError(t, err)
	require.NotNil(t, created.StartTime)
	require.NotNil(t, created.EndTime)
	assert.Equal(t, "16:00", *created.StartTime)
	assert.Equal(t, "24:00", *created.EndTime)
	assert.Equal(t, "Zhang San", created.EmployeeName)
	assert.Equal(t, "Afternoon", created.ShiftLabel)
}

func TestScheduleService_Update_ToRestClearsTimes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{EmployeeID: "1", Date: "2024-03-20", Shift: "morning"})
	require.NoError(t, err)

	rest := string(schedule.ShiftRest)
	updated, err := svc.UpdateSchedule(ctx, schedule.UpdateScheduleRequest{ID: created.ID, Shift: &rest})
	require.NoError(t, err)
	assert.Nil(t, updated.StartTime)
	assert.Nil(t, updated.EndTime)
}

func TestScheduleService_Create_Conflict(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{EmployeeID: "1", Date: "2024-03-20", Shift: "morning"})
	require.NoError(t, err)

	_, err = svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{EmployeeID: "1", Date: "2024-03-20", Shift: "night"})
	assert.ErrorIs(t, err, schedule.ErrScheduleConflict)
}

func TestScheduleService_Create_UnknownEmployee(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{EmployeeID: "99", Date: "2024-03-20", Shift: "night"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestScheduleService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{EmployeeID: "2", Date: "2024-03-20", Shift: "night"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteSchedule(ctx, created.ID))

	_, err = svc.GetSchedule(ctx, created.ID)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
	assert.ErrorIs(t, svc.DeleteSchedule(ctx, created.ID), schedule.ErrScheduleNotFound)
}

func TestScheduleService_GetDaySchedules(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{EmployeeID: "1", Date: "2024-03-20", Shift: "morning"})
	require.NoError(t, err)
	_, err = svc.CreateSchedule(ctx, schedule.CreateScheduleRequest{EmployeeID: "2", Date: "2024-03-21", Shift: "morning"})
	require.NoError(t, err)

	day, err := svc.GetDaySchedules(ctx, "2024-03-20")
	require.NoError(t, err)
	require.Len(t, day.Schedules, 1)
	assert.Equal(t, "1", day.Schedules[0].EmployeeID)

	var available []string
	for _, e := range day.AvailableEmployees {
		available = append(available, e.ID)
	}
	assert.Equal(t, []string{"2", "3"}, available)
}
