package memory

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
)

// Collection names used as event topics.
const (
	CollectionDepartments       = "departments"
	CollectionEmployees         = "employees"
	CollectionSchedules         = "schedules"
	CollectionAttendanceRecords = "attendance_records"
	CollectionLeaveRequests     = "leave_requests"
)

// Change actions carried by published events.
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionApproved = "approved"
	ActionRejected = "rejected"
)

// Collections lists every topic a subscriber may filter on.
var Collections = []string{
	CollectionDepartments,
	CollectionEmployees,
	CollectionSchedules,
	CollectionAttendanceRecords,
	CollectionLeaveRequests,
}

// Notifier receives one event per successful mutation.
type Notifier interface {
	Publish(event sse.Event)
}

type Option func(*Store)

// WithClock overrides the time source used for CreatedAt/UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

// Store holds every collection behind a single RWMutex. Collections keep
// insertion order; reads hand out copies.
type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	notifier Notifier

	departments   *collection[department.Department]
	employees     *collection[employee.Employee]
	schedules     *collection[schedule.Schedule]
	attendance    *collection[attendance.AttendanceRecord]
	leaveRequests *collection[leave.LeaveRequest]

	departmentByName map[string]string
	employeeByCode   map[string]string
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		now:              time.Now,
		departments:      newCollection(func(d department.Department) string { return d.ID }),
		employees:        newCollection(func(e employee.Employee) string { return e.ID }),
		schedules:        newCollection(func(sc schedule.Schedule) string { return sc.ID }),
		attendance:       newCollection(func(r attendance.AttendanceRecord) string { return r.ID }),
		leaveRequests:    newCollection(func(lr leave.LeaveRequest) string { return lr.ID }),
		departmentByName: make(map[string]string),
		employeeByCode:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot is an immutable copy of every collection.
type Snapshot struct {
	Departments       []department.Department
	Employees         []employee.Employee
	Schedules         []schedule.Schedule
	AttendanceRecords []attendance.AttendanceRecord
	LeaveRequests     []leave.LeaveRequest
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Departments:       s.departments.all(),
		Employees:         s.employees.all(),
		Schedules:         s.schedules.all(),
		AttendanceRecords: s.attendance.all(),
		LeaveRequests:     s.leaveRequests.all(),
	}
}

// collection is an insertion-ordered slice with an id index.
type collection[T any] struct {
	items []T
	index map[string]int
	idOf  func(T) string
}

func newCollection[T any](idOf func(T) string) *collection[T] {
	return &collection[T]{
		index: make(map[string]int),
		idOf:  idOf,
	}
}

func (c *collection[T]) get(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

func (c *collection[T]) has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// insert appends item and reports false when the id is taken.
func (c *collection[T]) insert(item T) bool {
	id := c.idOf(item)
	if c.has(id) {
		return false
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
	return true
}

// replace overwrites the item with the same id in place.
func (c *collection[T]) replace(item T) bool {
	i, ok := c.index[c.idOf(item)]
	if !ok {
		return false
	}
	c.items[i] = item
	return true
}

func (c *collection[T]) remove(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.idOf(c.items[j])] = j
	}
	return true
}

func (c *collection[T]) all() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
