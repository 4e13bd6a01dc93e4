package memory

import (
	"context"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
)

type departmentRepositoryImpl struct {
	store *Store
}

func NewDepartmentRepository(store *Store) department.DepartmentRepository {
	return &departmentRepositoryImpl{store: store}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		if _, taken := s.departmentByName[dept.Name]; taken || s.departments.has(dept.ID) {
			return department.ErrDepartmentAlreadyExists
		}
		s.departments.insert(dept)
		s.departmentByName[dept.Name] = dept.ID
		tx.record(CollectionDepartments, ActionCreated, dept.ID)
		return nil
	})
	if err != nil {
		return department.Department{}, err
	}
	return dept, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	var (
		dept department.Department
		ok   bool
	)
	r.store.read(func() {
		dept, ok = r.store.departments.get(id)
	})
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (department.Department, error) {
	var (
		dept department.Department
		ok   bool
	)
	r.store.read(func() {
		var id string
		if id, ok = r.store.departmentByName[name]; ok {
			dept, ok = r.store.departments.get(id)
		}
	})
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	var depts []department.Department
	r.store.read(func() {
		depts = r.store.departments.all()
	})
	return depts, nil
}
