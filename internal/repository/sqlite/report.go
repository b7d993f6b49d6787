package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hrlite/crm-backend-go/internal/domain/report"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// DepartmentHeadcounts implements report.ReportRepository. It reads the
// incrementally maintained counts rather than recomputing them from a join.
func (r *reportRepositoryImpl) DepartmentHeadcounts(ctx context.Context) ([]report.DepartmentHeadcount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, `SELECT name, employee_count FROM departments`)
	if err != nil {
		return nil, fmt.Errorf("department headcounts: %w", err)
	}
	defer rows.Close()

	var headcounts []report.DepartmentHeadcount
	for rows.Next() {
		var hc report.DepartmentHeadcount
		if err := rows.Scan(&hc.Name, &hc.EmployeeCount); err != nil {
			return nil, fmt.Errorf("scan headcount: %w", err)
		}
		headcounts = append(headcounts, hc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return headcounts, nil
}

// CountLeaveRequests implements report.ReportRepository.
func (r *reportRepositoryImpl) CountLeaveRequests(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM leave_requests`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count leave requests: %w", err)
	}

	return count, nil
}

// TotalSalary implements report.ReportRepository.
func (r *reportRepositoryImpl) TotalSalary(ctx context.Context) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRowContext(ctx, `SELECT COALESCE(SUM(salary), 0) FROM employees`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total salary: %w", err)
	}

	return total, nil
}
