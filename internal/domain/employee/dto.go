package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	ID           *string `json:"id,omitempty"`
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	DepartmentID string  `json:"department_id"`
	Position     string  `json:"position"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Status       string  `json:"status"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID != nil && validator.IsEmpty(*r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must not be empty when provided",
		})
	}

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must look like EMP001",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be 7-15 digits",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if r.Status == "" {
		r.Status = string(EmployeeStatusActive)
	}
	if !validator.IsInSlice(r.Status, EmployeeStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(EmployeeStatusValues, ", "),
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Name         *string `json:"name,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Position     *string `json:"position,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Status       *string `json:"status,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.EmployeeCode != nil && !validator.IsValidEmployeeCode(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must look like EMP001",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must not be empty",
		})
	}

	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not be empty",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be 7-15 digits",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, EmployeeStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(EmployeeStatusValues, ", "),
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply merges the non-nil fields into e. The request must already be validated.
func (r UpdateEmployeeRequest) Apply(e *Employee) {
	if r.EmployeeCode != nil {
		e.EmployeeCode = *r.EmployeeCode
	}
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.DepartmentID != nil {
		e.DepartmentID = *r.DepartmentID
	}
	if r.Position != nil {
		e.Position = *r.Position
	}
	if r.Phone != nil {
		e.Phone = *r.Phone
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Status != nil {
		e.Status = EmployeeStatus(*r.Status)
	}
	if r.AvatarURL != nil {
		e.AvatarURL = r.AvatarURL
	}
	if r.HireDate != nil {
		if d, ok := validator.IsValidDate(*r.HireDate); ok {
			e.HireDate = d
		}
	}
}

type EmployeeFilter struct {
	Search       *string `json:"search,omitempty"`
	Status       *string `json:"status,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Department   *string `json:"department,omitempty"` // exact department name
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, EmployeeStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(EmployeeStatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	Name           string  `json:"name"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	Position       string  `json:"position"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	Status         string  `json:"status"`
	StatusLabel    string  `json:"status_label"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
	HireDate       string  `json:"hire_date"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int                `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}

// ToResponse maps the entity; departmentName and statusLabel are resolved by the caller.
func (e Employee) ToResponse(departmentName, statusLabel string) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		Name:           e.Name,
		DepartmentID:   e.DepartmentID,
		DepartmentName: departmentName,
		Position:       e.Position,
		Phone:          e.Phone,
		Email:          e.Email,
		Status:         string(e.Status),
		StatusLabel:    statusLabel,
		AvatarURL:      e.AvatarURL,
		HireDate:       e.HireDate.Format(validator.DateLayout),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
}
