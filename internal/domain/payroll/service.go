package payroll

import "context"

type PayrollService interface {
	// RunForMonth processes every active employee that has no payroll
	// record for the month yet: allowances are 10% and deductions 5% of the
	// basic salary. Rerunning the same month processes nobody.
	RunForMonth(ctx context.Context, req RunPayrollRequest) (RunPayrollResponse, error)

	// ListPayroll returns records newest first.
	ListPayroll(ctx context.Context) ([]PayrollResponse, error)
}
