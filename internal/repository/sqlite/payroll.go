package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/hrlite/crm-backend-go/internal/domain/payroll"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// List implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.QueryContext(ctx, `
		SELECT pr.id, pr.employee_id, pr.basic_salary, pr.allowances, pr.deductions,
			pr.net_salary, pr.status, pr.month, pr.created_at, COALESCE(e.name, '')
		FROM payroll pr
		LEFT JOIN employees e ON e.id = pr.employee_id
		ORDER BY pr.created_at DESC, pr.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list payroll: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.BasicSalary, &rec.Allowances, &rec.Deductions,
			&rec.NetSalary, &rec.Status, &rec.Month, &rec.CreatedAt, &rec.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ExistsForMonth implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ExistsForMonth(ctx context.Context, employeeID int64, month string) (bool, error) {
	q := GetQuerier(ctx, p.db)

	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM payroll WHERE employee_id = ? AND month = ?)`,
		employeeID, month,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check payroll exists: %w", err)
	}

	return exists, nil
}

// Create implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	record.CreatedAt = time.Now().UTC()

	result, err := q.ExecContext(ctx, `
		INSERT INTO payroll (employee_id, basic_salary, allowances, deductions, net_salary, status, month, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.EmployeeID, record.BasicSalary, record.Allowances, record.Deductions,
		record.NetSalary, record.Status, record.Month, record.CreatedAt,
	)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("insert payroll record: %w", err)
	}

	record.ID, err = result.LastInsertId()
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("insert payroll record: %w", err)
	}

	return record, nil
}
