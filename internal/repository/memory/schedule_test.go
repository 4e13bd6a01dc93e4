package memory_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSchedule(id, employeeID, day string, shift schedule.Shift) schedule.Schedule {
	sc := schedule.Schedule{ID: id, EmployeeID: employeeID, Date: date(day)}
	sc.WithShift(shift)
	return sc
}

// ===== SCHEDULE REPOSITORY TESTS =====

func TestScheduleRepository_Create_Conflict(t *testing.T) {
	store, _ := newTestStore(t)
	employees := seedTech(t, store)
	repo := memory.NewScheduleRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, newSchedule("s1", employees[0].ID, "2024-03-16", schedule.ShiftMorning))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newSchedule("s2", employees[0].ID, "2024-03-16", schedule.ShiftNight))
	assert.ErrorIs(t, err, schedule.ErrScheduleConflict)

	_, err = repo.Create(ctx, newSchedule("s1", employees[1].ID, "2024-03-17", schedule.ShiftNight))
	assert.ErrorIs(t, err, schedule.ErrScheduleAlreadyExists)

	_, err = repo.Create(ctx, newSchedule("s3", "missing", "2024-03-17", schedule.ShiftNight))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestScheduleRepository_Update_ToRestClearsTimes(t *testing.T) {
	store, _ := newTestStore(t)
	employees := seedTech(t, store)
	repo := memory.NewScheduleRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, newSchedule("s1", employees[0].ID, "2024-03-16", schedule.ShiftAfternoon))
	require.NoError(t, err)
	require.NotNil(t, created.StartTime)
	assert.Equal(t, "16:00", *created.StartTime)
	assert.Equal(t, "24:00", *created.EndTime)

	rest := string(schedule.ShiftRest)
	updated, err := repo.Update(ctx, created.ID, schedule.UpdateScheduleRequest{ID: created.ID, Shift: &rest})
	require.NoError(t, err)
	assert.Equal(t, schedule.ShiftRest, updated.Shift)
	assert.Nil(t, updated.StartTime)
	assert.Nil(t, updated.EndTime)
}

func TestScheduleRepository_Update_MoveOntoTakenDay(t *testing.T) {
	store, _ := newTestStore(t)
	employees := seedTech(t, store)
	repo := memory.NewScheduleRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, newSchedule("s1", employees[0].ID, "2024-03-16", schedule.ShiftMorning))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newSchedule("s2", employees[0].ID, "2024-03-17", schedule.ShiftMorning))
	require.NoError(t, err)

	_, err = repo.Update(ctx, "s2", schedule.UpdateScheduleRequest{ID: "s2", Date: strPtr("2024-03-16")})
	assert.ErrorIs(t, err, schedule.ErrScheduleConflict)

	// same day on itself is not a conflict
	_, err = repo.Update(ctx, "s2", schedule.UpdateScheduleRequest{ID: "s2", Date: strPtr("2024-03-17")})
	assert.NoError(t, err)
}

func TestScheduleRepository_DeleteAndList(t *testing.T) {
	store, rec := newTestStore(t)
	employees := seedTech(t, store)
	repo := memory.NewScheduleRepository(store)
	ctx := context.Background()

	for i, day := range []string{"2024-03-16", "2024-03-17", "2024-03-18"} {
		_, err := repo.Create(ctx, newSchedule("s"+day, employees[i].ID, day, schedule.ShiftMorning))
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, "s2024-03-17"))
	assert.ErrorIs(t, repo.Delete(ctx, "s2024-03-17"), schedule.ErrScheduleNotFound)

	list, err := repo.List(ctx, schedule.ScheduleFilter{StartDate: strPtr("2024-03-17")})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "s2024-03-18", list[0].ID)

	events := rec.Events()
	last := events[len(events)-1]
	assert.Equal(t, memory.CollectionSchedules, last.Collection)
	assert.Equal(t, memory.ActionDeleted, last.Action)
}
