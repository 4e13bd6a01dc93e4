package department

type Department struct {
	ID          string
	Name        string
	Manager     *string
	Description *string
}

type DepartmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Manager       *string `json:"manager,omitempty"`
	Description   *string `json:"description,omitempty"`
	EmployeeCount int     `json:"employee_count"`
}
