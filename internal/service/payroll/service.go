package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrlite/crm-backend-go/internal/domain/employee"
	"github.com/hrlite/crm-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// RunForMonth implements payroll.PayrollService. Employees that already have
// a record for the month are skipped, so a rerun processes nobody.
func (s *PayrollServiceImpl) RunForMonth(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	month := req.Month
	if month == "" {
		month = s.now().Format("2006-01")
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	processed := 0
	for _, emp := range employees {
		exists, err := s.payrollRepo.ExistsForMonth(ctx, emp.ID, month)
		if err != nil {
			return payroll.RunPayrollResponse{}, fmt.Errorf("failed to check payroll for %s: %w", emp.EmployeeCode, err)
		}
		if exists {
			continue
		}

		basic := emp.Salary
		allowances := basic.Mul(payroll.AllowanceRate)
		deductions := basic.Mul(payroll.DeductionRate)
		net := basic.Add(allowances).Sub(deductions)

		_, err = s.payrollRepo.Create(ctx, payroll.PayrollRecord{
			EmployeeID:  emp.ID,
			BasicSalary: basic,
			Allowances:  allowances,
			Deductions:  deductions,
			NetSalary:   net,
			Status:      payroll.StatusProcessed,
			Month:       month,
		})
		if err != nil {
			return payroll.RunPayrollResponse{}, fmt.Errorf("failed to create payroll for %s: %w", emp.EmployeeCode, err)
		}
		processed++
	}

	slog.Info("payroll processed", "month", month, "processed", processed)

	return payroll.RunPayrollResponse{Month: month, Processed: processed}, nil
}

// ListPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayroll(ctx context.Context) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.PayrollResponse{
			ID:           rec.ID,
			EmployeeID:   rec.EmployeeID,
			EmployeeName: rec.EmployeeName,
			BasicSalary:  rec.BasicSalary,
			Allowances:   rec.Allowances,
			Deductions:   rec.Deductions,
			NetSalary:    rec.NetSalary,
			Status:       rec.Status,
			Month:        rec.Month,
		})
	}

	return responses, nil
}
