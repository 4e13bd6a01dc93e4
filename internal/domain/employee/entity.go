package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	DepartmentID string
	Position     string
	Phone        string
	Email        string
	Status       EmployeeStatus
	AvatarURL    *string
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

var EmployeeStatusValues = []string{
	string(EmployeeStatusActive),
	string(EmployeeStatusInactive),
}

func (e Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}
