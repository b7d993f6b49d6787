package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hrlite/crm-backend-go/internal/domain/department"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// List implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, d.db)

	rows, err := q.QueryContext(ctx, `
		SELECT id, name, head, employee_count, created_at
		FROM departments
	`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Head, &dept.EmployeeCount, &dept.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, dept)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) GetByID(ctx context.Context, id int64) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	var dept department.Department
	err := q.QueryRowContext(ctx, `
		SELECT id, name, head, employee_count, created_at
		FROM departments
		WHERE id = ?
	`, id).Scan(&dept.ID, &dept.Name, &dept.Head, &dept.EmployeeCount, &dept.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("get department by id: %w", err)
	}

	return dept, nil
}

// GetByName implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	var dept department.Department
	err := q.QueryRowContext(ctx, `
		SELECT id, name, head, employee_count, created_at
		FROM departments
		WHERE name = ?
	`, name).Scan(&dept.ID, &dept.Name, &dept.Head, &dept.EmployeeCount, &dept.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("get department by name: %w", err)
	}

	return dept, nil
}

// ExistsByName implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, d.db)

	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM departments WHERE name = ?)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check department name exists: %w", err)
	}

	return exists, nil
}

// Create implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	newDepartment.CreatedAt = time.Now().UTC()

	result, err := q.ExecContext(ctx, `
		INSERT INTO departments (name, head, employee_count, created_at)
		VALUES (?, ?, ?, ?)
	`, newDepartment.Name, newDepartment.Head, newDepartment.EmployeeCount, newDepartment.CreatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("insert department: %w", err)
	}

	newDepartment.ID, err = result.LastInsertId()
	if err != nil {
		return department.Department{}, fmt.Errorf("insert department: %w", err)
	}

	return newDepartment, nil
}

// AdjustEmployeeCount implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) AdjustEmployeeCount(ctx context.Context, id int64, delta int) error {
	q := GetQuerier(ctx, d.db)

	result, err := q.ExecContext(ctx, `
		UPDATE departments SET employee_count = employee_count + ? WHERE id = ?
	`, delta, id)
	if err != nil {
		return fmt.Errorf("adjust employee count: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjust employee count: %w", err)
	}
	if affected == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
