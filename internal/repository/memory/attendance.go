package memory

import (
	"context"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		if s.attendance.has(record.ID) {
			return attendance.ErrAttendanceAlreadyExists
		}
		if !s.employees.has(record.EmployeeID) {
			return employee.ErrEmployeeNotFound
		}

		now := s.now()
		if record.CreatedAt.IsZero() {
			record.CreatedAt = now
		}
		record.UpdatedAt = now

		s.attendance.insert(record)
		tx.record(CollectionAttendanceRecords, ActionCreated, record.ID)
		return nil
	})
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}
	return record, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	var (
		rec attendance.AttendanceRecord
		ok  bool
	)
	r.store.read(func() {
		rec, ok = r.store.attendance.get(id)
	})
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, error) {
	var records []attendance.AttendanceRecord
	r.store.read(func() {
		records = r.store.attendance.filter(filter.Matches)
	})
	return records, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceRecord, error) {
	var updated attendance.AttendanceRecord
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		current, ok := s.attendance.get(id)
		if !ok {
			return attendance.ErrAttendanceNotFound
		}

		next := current
		if err := req.Apply(&next); err != nil {
			return err
		}
		next.UpdatedAt = s.now()

		s.attendance.replace(next)
		tx.record(CollectionAttendanceRecords, ActionUpdated, id)
		updated = next
		return nil
	})
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}
	return updated, nil
}
