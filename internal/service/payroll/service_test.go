package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlite/crm-backend-go/internal/domain/payroll"
	"github.com/hrlite/crm-backend-go/internal/pkg/validator"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite/sqlitetest"
)

func newPayrollService(t *testing.T) *PayrollServiceImpl {
	t.Helper()

	db := sqlitetest.NewTestDatabase(t)
	sqlitetest.SeedDefaults(t, db)

	return &PayrollServiceImpl{
		payrollRepo:  sqlite.NewPayrollRepository(db),
		employeeRepo: sqlite.NewEmployeeRepository(db),
		now: func() time.Time {
			return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestPayrollService_RunForMonth_FixedRates(t *testing.T) {
	ctx := context.Background()
	svc := newPayrollService(t)

	res, err := svc.RunForMonth(ctx, payroll.RunPayrollRequest{Month: "2024-01"})
	require.NoError(t, err)
	assert.Equal(t, "2024-01", res.Month)
	assert.Equal(t, 5, res.Processed)

	records, err := svc.ListPayroll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 5)

	// Ahmed Ali draws a basic salary of 50000.
	var found bool
	for _, rec := range records {
		if rec.EmployeeName != "Ahmed Ali" {
			continue
		}
		found = true
		assert.True(t, rec.BasicSalary.Equal(decimal.NewFromInt(50000)), "basic %s", rec.BasicSalary)
		assert.True(t, rec.Allowances.Equal(decimal.NewFromInt(5000)), "allowances %s", rec.Allowances)
		assert.True(t, rec.Deductions.Equal(decimal.NewFromInt(2500)), "deductions %s", rec.Deductions)
		assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(52500)), "net %s", rec.NetSalary)
		assert.Equal(t, payroll.StatusProcessed, rec.Status)
		assert.Equal(t, "2024-01", rec.Month)
	}
	assert.True(t, found, "expected a payroll record for Ahmed Ali")
}

func TestPayrollService_RunForMonth_RerunProcessesNobody(t *testing.T) {
	ctx := context.Background()
	svc := newPayrollService(t)

	first, err := svc.RunForMonth(ctx, payroll.RunPayrollRequest{Month: "2024-01"})
	require.NoError(t, err)
	require.Equal(t, 5, first.Processed)

	second, err := svc.RunForMonth(ctx, payroll.RunPayrollRequest{Month: "2024-01"})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)

	records, err := svc.ListPayroll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestPayrollService_RunForMonth_DistinctMonthsProcessAgain(t *testing.T) {
	ctx := context.Background()
	svc := newPayrollService(t)

	_, err := svc.RunForMonth(ctx, payroll.RunPayrollRequest{Month: "2024-01"})
	require.NoError(t, err)

	res, err := svc.RunForMonth(ctx, payroll.RunPayrollRequest{Month: "2024-02"})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Processed)

	records, err := svc.ListPayroll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 10)
}

func TestPayrollService_RunForMonth_MonthDefaultsToCurrent(t *testing.T) {
	ctx := context.Background()
	svc := newPayrollService(t)

	res, err := svc.RunForMonth(ctx, payroll.RunPayrollRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01", res.Month)
}

func TestPayrollService_RunForMonth_InvalidMonth(t *testing.T) {
	ctx := context.Background()
	svc := newPayrollService(t)

	_, err := svc.RunForMonth(ctx, payroll.RunPayrollRequest{Month: "January 2024"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
