package memory

import (
	"context"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type scheduleRepositoryImpl struct {
	store *Store
}

func NewScheduleRepository(store *Store) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{store: store}
}

// conflicts reports whether another schedule already covers the employee's day.
func (r *scheduleRepositoryImpl) conflicts(sc schedule.Schedule) bool {
	day := sc.Date.Format(validator.DateLayout)
	for _, existing := range r.store.schedules.items {
		if existing.ID != sc.ID && existing.EmployeeID == sc.EmployeeID && existing.Date.Format(validator.DateLayout) == day {
			return true
		}
	}
	return false
}

func (r *scheduleRepositoryImpl) Create(ctx context.Context, sc schedule.Schedule) (schedule.Schedule, error) {
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		if s.schedules.has(sc.ID) {
			return schedule.ErrScheduleAlreadyExists
		}
		if !s.employees.has(sc.EmployeeID) {
			return employee.ErrEmployeeNotFound
		}
		if r.conflicts(sc) {
			return schedule.ErrScheduleConflict
		}

		now := s.now()
		if sc.CreatedAt.IsZero() {
			sc.CreatedAt = now
		}
		sc.UpdatedAt = now

		s.schedules.insert(sc)
		tx.record(CollectionSchedules, ActionCreated, sc.ID)
		return nil
	})
	if err != nil {
		return schedule.Schedule{}, err
	}
	return sc, nil
}

func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	var (
		sc schedule.Schedule
		ok bool
	)
	r.store.read(func() {
		sc, ok = r.store.schedules.get(id)
	})
	if !ok {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	return sc, nil
}

func (r *scheduleRepositoryImpl) List(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	r.store.read(func() {
		schedules = r.store.schedules.filter(filter.Matches)
	})
	return schedules, nil
}

func (r *scheduleRepositoryImpl) Update(ctx context.Context, id string, req schedule.UpdateScheduleRequest) (schedule.Schedule, error) {
	var updated schedule.Schedule
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		current, ok := s.schedules.get(id)
		if !ok {
			return schedule.ErrScheduleNotFound
		}

		next := current
		req.Apply(&next)

		if next.EmployeeID != current.EmployeeID && !s.employees.has(next.EmployeeID) {
			return employee.ErrEmployeeNotFound
		}
		if r.conflicts(next) {
			return schedule.ErrScheduleConflict
		}

		next.UpdatedAt = s.now()
		s.schedules.replace(next)
		tx.record(CollectionSchedules, ActionUpdated, id)
		updated = next
		return nil
	})
	if err != nil {
		return schedule.Schedule{}, err
	}
	return updated, nil
}

func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.WithTransaction(func(tx *Tx) error {
		if !tx.store.schedules.remove(id) {
			return schedule.ErrScheduleNotFound
		}
		tx.record(CollectionSchedules, ActionDeleted, id)
		return nil
	})
}
