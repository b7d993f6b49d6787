package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayrollRecord struct {
	ID          int64
	EmployeeID  int64
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Status      string
	// Month is the payroll period in "2006-01" form.
	Month     string
	CreatedAt time.Time

	// Joined fields
	EmployeeName string
}

const StatusProcessed = "Processed"

// Fixed payroll percentages. Per-employee or per-department components are
// not modeled.
var (
	AllowanceRate = decimal.NewFromFloat(0.10)
	DeductionRate = decimal.NewFromFloat(0.05)
)
