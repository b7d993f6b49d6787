package department

import "time"

type Department struct {
	ID   int64
	Name string
	Head *string
	// EmployeeCount is maintained incrementally by the employee service
	// inside the same transaction as the employee write, never recomputed
	// from a join.
	EmployeeCount int
	CreatedAt     time.Time
}
