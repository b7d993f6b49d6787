package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hrlite/crm-backend-go/internal/pkg/validator"
)

type RunPayrollRequest struct {
	// Month defaults to the current month when empty.
	Month string `json:"month,omitempty"`
}

func (r RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Month) {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be in YYYY-MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunPayrollResponse struct {
	Month     string `json:"month"`
	Processed int    `json:"processed"`
}

type PayrollResponse struct {
	ID           int64           `json:"id"`
	EmployeeID   int64           `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       string          `json:"status"`
	Month        string          `json:"month"`
}
