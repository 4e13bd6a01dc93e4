package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

// recorder collects published events.
type recorder struct {
	mu     sync.Mutex
	events []sse.Event
}

func (r *recorder) Publish(ev sse.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) Events() []sse.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sse.Event, len(r.events))
	copy(out, r.events)
	return out
}

func newTestStore(t *testing.T) (*memory.Store, *recorder) {
	t.Helper()
	rec := &recorder{}
	store := memory.NewStore(
		memory.WithClock(func() time.Time { return testNow }),
		memory.WithNotifier(rec),
	)
	return store, rec
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// seedTech loads one "Tech" department with three employees.
func seedTech(t *testing.T, store *memory.Store) []employee.Employee {
	t.Helper()
	ctx := context.Background()

	_, err := memory.NewDepartmentRepository(store).Create(ctx, department.Department{ID: "dept-tech", Name: "Tech"})
	require.NoError(t, err)

	empRepo := memory.NewEmployeeRepository(store)
	var employees []employee.Employee
	for _, e := range []employee.Employee{
		{ID: "1", EmployeeCode: "EMP001", Name: "Alice Zhang", DepartmentID: "dept-tech", Position: "Engineer", Phone: "13800138001", Email: "alice@example.com", Status: employee.EmployeeStatusActive, HireDate: date("2023-01-15")},
		{ID: "2", EmployeeCode: "EMP002", Name: "Bob Li", DepartmentID: "dept-tech", Position: "Engineer", Phone: "13800138002", Email: "bob@example.com", Status: employee.EmployeeStatusActive, HireDate: date("2023-02-01")},
		{ID: "3", EmployeeCode: "EMP003", Name: "Carol Wang", DepartmentID: "dept-tech", Position: "Designer", Phone: "13800138003", Email: "carol@example.com", Status: employee.EmployeeStatusActive, HireDate: date("2023-03-10")},
	} {
		created, err := empRepo.Create(ctx, e)
		require.NoError(t, err)
		employees = append(employees, created)
	}
	return employees
}

func strPtr(s string) *string { return &s }
