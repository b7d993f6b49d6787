package payroll

import "context"

type PayrollRepository interface {
	List(ctx context.Context) ([]PayrollRecord, error)
	ExistsForMonth(ctx context.Context, employeeID int64, month string) (bool, error)
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
}
