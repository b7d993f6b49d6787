package report

import (
	"context"

	"github.com/shopspring/decimal"
)

type ReportRepository interface {
	DepartmentHeadcounts(ctx context.Context) ([]DepartmentHeadcount, error)
	CountLeaveRequests(ctx context.Context) (int, error)
	// TotalSalary sums the monthly salary across all employees.
	TotalSalary(ctx context.Context) (decimal.Decimal, error)
}
