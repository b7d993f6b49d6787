package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns all employees ordered by employee code ascending
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// NextCode returns the code the next created employee will receive
	NextCode(ctx context.Context) (NextCodeResponse, error)

	// CreateEmployee inserts an Active employee and increments the
	// department's employee count in the same transaction
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates an employee; a department change moves the
	// headcount between the two departments
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee and decrements the department's
	// employee count; deleting an unknown ID is a silent no-op
	DeleteEmployee(ctx context.Context, id int64) error
}
