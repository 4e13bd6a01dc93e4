package department

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (department.DepartmentService, employee.EmployeeRepository) {
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
	return NewDepartmentService(deptRepo, empRepo), empRepo
}

func TestDepartmentService_List_Headcounts(t *testing.T) {
	svc, _ := newTestService(t)

	depts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, depts, 4)

	counts := map[string]int{}
	for _, d := range depts {
		counts[d.Name] = d.EmployeeCount
	}
	assert.Equal(t, map[string]int{"Tech": 2, "Product": 1, "Operations": 0, "HR": 0}, counts)
}

func TestDepartmentService_Headcount_ExcludesInactive(t *testing.T) {
	svc, empRepo := newTestService(t)
	ctx := context.Background()

	_, err := empRepo.Deactivate(ctx, "1")
	require.NoError(t, err)

	tech, err := svc.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Tech", tech.Name)
	assert.Equal(t, 1, tech.EmployeeCount)
}

func TestDepartmentService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}
