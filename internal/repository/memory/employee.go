package memory

import (
	"context"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		if s.employees.has(newEmployee.ID) {
			return employee.ErrEmployeeAlreadyExists
		}
		if _, taken := s.employeeByCode[newEmployee.EmployeeCode]; taken {
			return employee.ErrEmployeeCodeExists
		}
		if !s.departments.has(newEmployee.DepartmentID) {
			return department.ErrDepartmentNotFound
		}

		now := s.now()
		if newEmployee.CreatedAt.IsZero() {
			newEmployee.CreatedAt = now
		}
		newEmployee.UpdatedAt = now

		s.employees.insert(newEmployee)
		s.employeeByCode[newEmployee.EmployeeCode] = newEmployee.ID
		tx.record(CollectionEmployees, ActionCreated, newEmployee.ID)
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return newEmployee, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var (
		e  employee.Employee
		ok bool
	)
	r.store.read(func() {
		e, ok = r.store.employees.get(id)
	})
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	var (
		e  employee.Employee
		ok bool
	)
	r.store.read(func() {
		var id string
		if id, ok = r.store.employeeByCode[employeeCode]; ok {
			e, ok = r.store.employees.get(id)
		}
	})
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	r.store.read(func() {
		employees = r.store.employees.all()
	})
	return employees, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var updated employee.Employee
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		current, ok := s.employees.get(id)
		if !ok {
			return employee.ErrEmployeeNotFound
		}

		next := current
		req.Apply(&next)

		if next.EmployeeCode != current.EmployeeCode {
			if _, taken := s.employeeByCode[next.EmployeeCode]; taken {
				return employee.ErrEmployeeCodeExists
			}
		}
		if next.DepartmentID != current.DepartmentID && !s.departments.has(next.DepartmentID) {
			return department.ErrDepartmentNotFound
		}

		next.UpdatedAt = s.now()
		s.employees.replace(next)
		if next.EmployeeCode != current.EmployeeCode {
			delete(s.employeeByCode, current.EmployeeCode)
			s.employeeByCode[next.EmployeeCode] = next.ID
		}
		tx.record(CollectionEmployees, ActionUpdated, id)
		updated = next
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) (employee.Employee, error) {
	var updated employee.Employee
	err := r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		current, ok := s.employees.get(id)
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		if !current.IsActive() {
			return employee.ErrEmployeeAlreadyInactive
		}

		current.Status = employee.EmployeeStatusInactive
		current.UpdatedAt = s.now()
		s.employees.replace(current)
		tx.record(CollectionEmployees, ActionUpdated, id)
		updated = current
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// Delete removes only the employee. Schedules, attendance records and leave
// requests that reference it are kept.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.WithTransaction(func(tx *Tx) error {
		s := tx.store
		current, ok := s.employees.get(id)
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		s.employees.remove(id)
		delete(s.employeeByCode, current.EmployeeCode)
		tx.record(CollectionEmployees, ActionDeleted, id)
		return nil
	})
}
