package leave

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *LeaveServiceImpl {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore(memory.WithClock(func() time.Time { return testNow }))

	deptRepo := memory.NewDepartmentRepository(store)
	_, err := deptRepo.Create(ctx, department.Department{ID: "dept-tech", Name: "Tech"})
	require.NoError(t, err)

	empRepo := memory.NewEmployeeRepository(store)
	for i, name := range []string{"Zhang San", "Li Si", "Wang Wu"} {
		_, err := empRepo.Create(ctx, employee.Employee{
			ID:           string(rune('1' + i)),
			EmployeeCode: "EMP00" + string(rune('1'+i)),
			Name:         name,
			DepartmentID: "dept-tech",
			Position:     "Engineer",
			Phone:        "1380013800" + string(rune('1'+i)),
			Email:        "user@example.com",
			Status:       employee.EmployeeStatusActive,
		})
		require.NoError(t, err)
	}

	return &LeaveServiceImpl{
		leaveRequestRepo: memory.NewLeaveRequestRepository(store),
		employeeRepo:     empRepo,
		departmentRepo:   deptRepo,
		now:              func() time.Time { return testNow },
	}
}

func createRequest(t *testing.T, svc *LeaveServiceImpl, employeeID string) leave.LeaveRequestResponse {
	t.Helper()
	resp, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: employeeID,
		Type:       string(leave.LeaveTypeAnnual),
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-02",
		Reason:     "Family trip",
	})
	require.NoError(t, err)
	return resp
}

// ===== LEAVE SERVICE TESTS =====

func TestLeaveService_ApproveFlow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created := createRequest(t, svc, "1")
	assert.Equal(t, string(leave.LeaveRequestStatusPending), created.Status)
	assert.Equal(t, 2, created.Days)
	assert.Equal(t, "Zhang San", created.EmployeeName)
	assert.Equal(t, "Tech", created.DepartmentName)

	approved, err := svc.ApproveLeaveRequest(ctx, leave.DecisionRequest{ID: created.ID, ApprovedBy: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusApproved), approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "Admin", *approved.ApprovedBy)
	require.NotNil(t, approved.ApprovedAt)
	assert.Equal(t, testNow.Format(time.RFC3339), *approved.ApprovedAt)
	assert.Equal(t, 2, approved.Days)

	fetched, err := svc.GetLeaveRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, approved, fetched)
}

func TestLeaveService_RejectAfterApprove(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created := createRequest(t, svc, "1")

	_, err := svc.ApproveLeaveRequest(ctx, leave.DecisionRequest{ID: created.ID, ApprovedBy: "Admin"})
	require.NoError(t, err)

	_, err = svc.RejectLeaveRequest(ctx, leave.DecisionRequest{ID: created.ID, ApprovedBy: "Admin"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestLeaveService_ApproveUnknown(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ApproveLeaveRequest(context.Background(), leave.DecisionRequest{ID: "missing", ApprovedBy: "Admin"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_Create_Validation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "1",
		Type:       "holiday",
		StartDate:  "2024-03-05",
		EndDate:    "2024-03-01",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "end_date")
	assert.Contains(t, fields, "reason")
}

func TestLeaveService_Create_UnknownEmployee(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "99",
		Type:       string(leave.LeaveTypeSick),
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-01",
		Reason:     "Flu",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveService_Update_RecomputesDays(t *testing.T) {
	svc := newTestService(t)
	created := createRequest(t, svc, "2")

	end := "2024-03-05"
	updated, err := svc.UpdateLeaveRequest(context.Background(), leave.UpdateLeaveRequestRequest{ID: created.ID, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Days)
	assert.Equal(t, end, updated.EndDate)
}

func TestLeaveService_Update_ProcessedRequest(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created := createRequest(t, svc, "2")
	_, err := svc.RejectLeaveRequest(ctx, leave.DecisionRequest{ID: created.ID, ApprovedBy: "Admin"})
	require.NoError(t, err)

	reason := "Changed plans"
	_, err = svc.UpdateLeaveRequest(ctx, leave.UpdateLeaveRequestRequest{ID: created.ID, Reason: &reason})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	comments := "Overlaps release week"
	updated, err := svc.UpdateLeaveRequest(ctx, leave.UpdateLeaveRequestRequest{ID: created.ID, Comments: &comments})
	require.NoError(t, err)
	assert.Equal(t, comments, *updated.Comments)
}

func TestLeaveService_ListAndCounts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a := createRequest(t, svc, "1")
	b := createRequest(t, svc, "2")
	createRequest(t, svc, "3")

	_, err := svc.ApproveLeaveRequest(ctx, leave.DecisionRequest{ID: a.ID, ApprovedBy: "Admin"})
	require.NoError(t, err)
	_, err = svc.RejectLeaveRequest(ctx, leave.DecisionRequest{ID: b.ID, ApprovedBy: "Admin"})
	require.NoError(t, err)

	counts, err := svc.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestCounts{All: 3, Pending: 1, Approved: 1, Rejected: 1}, counts)

	all := leave.StatusTabAll
	list, err := svc.ListLeaveRequest(ctx, leave.LeaveRequestFilter{Status: &all})
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalCount)

	pending := string(leave.LeaveRequestStatusPending)
	list, err = svc.ListLeaveRequest(ctx, leave.LeaveRequestFilter{Status: &pending})
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
	assert.Equal(t, "3", list.LeaveRequests[0].EmployeeID)
}
