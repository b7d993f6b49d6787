package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id int64) error
	// MaxCodeNumber returns the highest numeric suffix among existing
	// employee codes, 0 when the table is empty.
	MaxCodeNumber(ctx context.Context) (int, error)
}
