package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hrlite/crm-backend-go/internal/domain/employee"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.name, e.email, e.department_id, e.designation,
	e.salary, e.status, e.created_at, d.name
`

func scanEmployee(row interface{ Scan(...interface{}) error }) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.Email, &emp.DepartmentID,
		&emp.Designation, &emp.Salary, &emp.Status, &emp.CreatedAt, &emp.DepartmentName,
	)
	return emp, err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return e.list(ctx, `
		SELECT `+employeeColumns+`
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		ORDER BY e.employee_code ASC
	`)
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return e.list(ctx, `
		SELECT `+employeeColumns+`
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.status = 'Active'
		ORDER BY e.employee_code ASC
	`)
}

func (e *employeeRepositoryImpl) list(ctx context.Context, query string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
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

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRowContext(ctx, `
		SELECT `+employeeColumns+`
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.id = ?
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee by id: %w", err)
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	newEmployee.CreatedAt = time.Now().UTC()

	result, err := q.ExecContext(ctx, `
		INSERT INTO employees (employee_code, name, email, department_id, designation, salary, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		newEmployee.EmployeeCode, newEmployee.Name, newEmployee.Email, newEmployee.DepartmentID,
		newEmployee.Designation, newEmployee.Salary, newEmployee.Status, newEmployee.CreatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}

	newEmployee.ID, err = result.LastInsertId()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	result, err := q.ExecContext(ctx, `
		UPDATE employees
		SET name = ?, email = ?, department_id = ?, designation = ?, salary = ?, status = ?
		WHERE id = ?
	`, emp.Name, emp.Email, emp.DepartmentID, emp.Designation, emp.Salary, emp.Status, emp.ID)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if affected == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	return nil
}

// MaxCodeNumber implements employee.EmployeeRepository. Codes that do not
// follow the EMP prefix cast to 0 and never influence the next code.
func (e *employeeRepositoryImpl) MaxCodeNumber(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, e.db)

	var max int
	err := q.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(CAST(SUBSTR(employee_code, 4) AS INTEGER)), 0)
		FROM employees
	`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max employee code number: %w", err)
	}

	return max, nil
}
