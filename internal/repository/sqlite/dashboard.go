package sqlite

import (
	"context"
	"fmt"

	"github.com/hrlite/crm-backend-go/internal/domain/dashboard"
	"github.com/hrlite/crm-backend-go/internal/domain/employee"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (d *dashboardRepositoryImpl) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	q := GetQuerier(ctx, d.db)

	var count int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return count, nil
}

// CountEmployees implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM employees`)
}

// CountDepartments implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) CountDepartments(ctx context.Context) (int, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM departments`)
}

// CountLeaveRequests implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) CountLeaveRequests(ctx context.Context) (int, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM leave_requests`)
}

// CountPresentOn implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) CountPresentOn(ctx context.Context, date string) (int, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM attendance WHERE date = ?`, date)
}

// RecentEmployees implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) RecentEmployees(ctx context.Context, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, d.db)

	rows, err := q.QueryContext(ctx, `
		SELECT `+employeeColumns+`
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		ORDER BY e.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
