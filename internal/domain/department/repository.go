package department

import "context"

type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id int64) (Department, error)
	GetByName(ctx context.Context, name string) (Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, newDepartment Department) (Department, error)
	// AdjustEmployeeCount adds delta (which may be negative) to a
	// department's employee_count. Callers run it in the same transaction
	// as the employee write it compensates for.
	AdjustEmployeeCount(ctx context.Context, id int64, delta int) error
}
