package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeAlreadyExists   = errors.New("employee already exists")
	ErrEmployeeCodeExists      = errors.New("employee code already exists")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
)
