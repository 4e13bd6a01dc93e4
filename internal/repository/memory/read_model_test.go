package memory_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAttendance(t *testing.T, store *memory.Store, records ...attendance.AttendanceRecord) {
	t.Helper()
	repo := memory.NewAttendanceRepository(store)
	for _, r := range records {
		_, err := repo.Create(context.Background(), r)
		require.NoError(t, err)
	}
}

func TestDashboardRepository_Counts(t *testing.T) {
	store, _ := newTestStore(t)
	employees := seedTech(t, store)
	ctx := context.Background()

	inactive := string(employee.EmployeeStatusInactive)
	_, err := memory.NewEmployeeRepository(store).Update(ctx, employees[2].ID, employee.UpdateEmployeeRequest{Status: &inactive})
	require.NoError(t, err)

	seedAttendance(t, store,
		attendance.AttendanceRecord{ID: "a1", EmployeeID: "1", Date: date("2024-03-15"), Status: attendance.AttendanceStatusNormal},
		attendance.AttendanceRecord{ID: "a2", EmployeeID: "2", Date: date("2024-03-15"), Status: attendance.AttendanceStatusLate},
		attendance.AttendanceRecord{ID: "a3", EmployeeID: "1", Date: date("2024-03-14"), Status: attendance.AttendanceStatusAbsent},
	)

	repo := memory.NewDashboardRepository(store)

	summary, err := repo.GetEmployeeSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Total)
	assert.Equal(t, int64(2), summary.Active)
	assert.Equal(t, int64(1), summary.Inactive)

	day, err := repo.GetAttendanceStatsByDay(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), day.Normal)
	assert.Equal(t, int64(1), day.Late)
	assert.Equal(t, int64(0), day.Absent)
}

func TestReportRepository_JoinsAndFilters(t *testing.T) {
	store, _ := newTestStore(t)
	seedTech(t, store)
	ctx := context.Background()

	_, err := memory.NewDepartmentRepository(store).Create(ctx, department.Department{ID: "dept-ops", Name: "Operations"})
	require.NoError(t, err)
	_, err = memory.NewEmployeeRepository(store).Create(ctx, employee.Employee{ID: "4", EmployeeCode: "EMP004", Name: "Dan Zhou", DepartmentID: "dept-ops", Status: employee.EmployeeStatusActive})
	require.NoError(t, err)

	in := "09:00"
	seedAttendance(t, store,
		attendance.AttendanceRecord{ID: "a1", EmployeeID: "1", Date: date("2024-03-10"), CheckInTime: &in, Status: attendance.AttendanceStatusNormal, WorkHours: 8},
		attendance.AttendanceRecord{ID: "a2", EmployeeID: "4", Date: date("2024-03-11"), Status: attendance.AttendanceStatusAbsent},
		attendance.AttendanceRecord{ID: "a3", EmployeeID: "2", Date: date("2024-02-01"), Status: attendance.AttendanceStatusNormal},
	)
	require.NoError(t, memory.NewEmployeeRepository(store).Delete(ctx, "4"))

	repo := memory.NewReportRepository(store)

	rows, err := repo.GetAttendanceReport(ctx, date("2024-03-01"), date("2024-03-31"), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice Zhang", rows[0].EmployeeName)
	assert.Equal(t, "Tech", rows[0].DepartmentName)
	assert.Equal(t, "", rows[1].EmployeeName)

	tech := "dept-tech"
	rows, err = repo.GetAttendanceReport(ctx, date("2024-01-01"), date("2024-03-31"), &tech)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a1", rows[0].RecordID)
	assert.Equal(t, "a3", rows[1].RecordID)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store, _ := newTestStore(t)
	seedTech(t, store)

	snap := store.Snapshot()
	snap.Employees[0].Name = "changed"

	got, err := memory.NewEmployeeRepository(store).GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Zhang", got.Name)
}
