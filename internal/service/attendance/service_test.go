package attendance

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) attendance.AttendanceService {
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
	return NewAttendanceService(memory.NewAttendanceRepository(store), empRepo, deptRepo)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func createAbsent(t *testing.T, svc attendance.AttendanceService, id string) attendance.AttendanceResponse {
	t.Helper()
	created, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		ID:         strPtr(id),
		EmployeeID: "1",
		Date:       "2024-03-11",
		Status:     string(attendance.AttendanceStatusAbsent),
	})
	require.NoError(t, err)
	return created
}

// ===== CREATE =====

func TestAttendanceService_Create(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID:   "1",
		Date:         "2024-03-11",
		CheckInTime:  strPtr("09:00"),
		CheckOutTime: strPtr("18:00"),
		WorkHours:    8,
		Status:       "normal",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Zhang San", created.EmployeeName)
	assert.Equal(t, "2024-03-11", created.Date)
	assert.Equal(t, "Normal", created.StatusLabel)
	assert.Equal(t, 8.0, created.WorkHours)
}

func TestAttendanceService_Create_DuplicateID(t *testing.T) {
	svc := newTestService(t)
	createAbsent(t, svc, "r1")

	_, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		ID:         strPtr("r1"),
		EmployeeID: "2",
		Date:       "2024-03-12",
		Status:     "normal",
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyExists)
}

func TestAttendanceService_Create_UnknownEmployee(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "99",
		Date:       "2024-03-11",
		Status:     "normal",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Create_AbsentWithTimes(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateAttendance(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID:  "1",
		Date:        "2024-03-11",
		CheckInTime: strPtr("09:00"),
		Status:      "absent",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "status")
}

// ===== UPDATE =====

func TestAttendanceService_Update_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{ID: "missing", WorkHours: floatPtr(8)})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_Update_ToAbsentClearsTimes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAttendance(ctx, attendance.CreateAttendanceRequest{
		EmployeeID:   "1",
		Date:         "2024-03-11",
		CheckInTime:  strPtr("09:00"),
		CheckOutTime: strPtr("18:00"),
		WorkHours:    8,
		Status:       "normal",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{ID: created.ID, Status: strPtr("absent")})
	require.NoError(t, err)
	assert.Equal(t, "absent", updated.Status)
	assert.Nil(t, updated.CheckInTime)
	assert.Nil(t, updated.CheckOutTime)
	assert.Zero(t, updated.WorkHours)
}

func TestAttendanceService_Update_AbsentRejectsTimes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	createAbsent(t, svc, "r1")

	_, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{ID: "r1", CheckInTime: strPtr("09:00"), WorkHours: floatPtr(8)})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "status")

	stored, err := svc.GetAttendance(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "absent", stored.Status)
	assert.Nil(t, stored.CheckInTime)
	assert.Zero(t, stored.WorkHours)
}

func TestAttendanceService_Update_AbsentToLateWithTimes(t *testing.T) {
	svc := newTestService(t)
	createAbsent(t, svc, "r1")

	updated, err := svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{
		ID:          "r1",
		Status:      strPtr("late"),
		CheckInTime: strPtr("09:30"),
		WorkHours:   floatPtr(7.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "late", updated.Status)
	require.NotNil(t, updated.CheckInTime)
	assert.Equal(t, "09:30", *updated.CheckInTime)
	assert.Equal(t, 7.5, updated.WorkHours)
}

// ===== LIST =====

func TestAttendanceService_List_DepartmentFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, emp := range []string{"1", "2", "3"} {
		_, err := svc.CreateAttendance(ctx, attendance.CreateAttendanceRequest{EmployeeID: emp, Date: "2024-03-11", Status: "normal", WorkHours: 8})
		require.NoError(t, err)
	}

	list, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{DepartmentID: strPtr("2")})
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
	assert.Equal(t, "Wang Wu", list.Records[0].EmployeeName)

	list, err = svc.ListAttendance(ctx, attendance.AttendanceFilter{DepartmentID: strPtr("4")})
	require.NoError(t, err)
	assert.Zero(t, list.TotalCount)
}

func TestAttendanceService_List_DepartmentName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, emp := range []string{"1", "2", "3"} {
		_, err := svc.CreateAttendance(ctx, attendance.CreateAttendanceRequest{EmployeeID: emp, Date: "2024-03-11", Status: "normal", WorkHours: 8})
		require.NoError(t, err)
	}

	list, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{Department: strPtr("Tech")})
	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalCount)

	list, err = svc.ListAttendance(ctx, attendance.AttendanceFilter{Department: strPtr("Finance")})
	require.NoError(t, err)
	assert.Zero(t, list.TotalCount)
	assert.NotNil(t, list.Records)
}
