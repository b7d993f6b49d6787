// Package fixtures holds the rows a fresh database starts with: one
// administrator account, four departments and five sample employees.
package fixtures

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hrlite/crm-backend-go/internal/domain/department"
	"github.com/hrlite/crm-backend-go/internal/domain/employee"
	"github.com/hrlite/crm-backend-go/internal/domain/user"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
)

var DefaultAdmin = user.User{
	Username: "admin",
	Name:     "Admin User",
	Email:    "admin@crm.com",
	Password: "admin123",
}

type SeedDepartment struct {
	Name string
	Head string
}

var DefaultDepartments = []SeedDepartment{
	{Name: "Finance", Head: "John Doe"},
	{Name: "Human Resources", Head: "Jane Smith"},
	{Name: "Information Technology", Head: "Mike Johnson"},
	{Name: "Marketing", Head: "Sarah Williams"},
}

type SeedEmployee struct {
	Code        string
	Name        string
	Email       string
	Department  string
	Designation string
	Salary      decimal.Decimal
}

var DefaultEmployees = []SeedEmployee{
	{Code: "EMP001", Name: "Ahmed Ali", Email: "ahmed@company.com", Department: "Finance", Designation: "Accountant", Salary: decimal.NewFromInt(50000)},
	{Code: "EMP002", Name: "Sara Khan", Email: "sara@company.com", Department: "Human Resources", Designation: "HR Manager", Salary: decimal.NewFromInt(60000)},
	{Code: "EMP003", Name: "Usman Sheikh", Email: "usman@company.com", Department: "Information Technology", Designation: "Developer", Salary: decimal.NewFromInt(70000)},
	{Code: "EMP004", Name: "Fatima Noor", Email: "fatima@company.com", Department: "Marketing", Designation: "Marketing Executive", Salary: decimal.NewFromInt(55000)},
	{Code: "EMP005", Name: "Ali Raza", Email: "ali@company.com", Department: "Finance", Designation: "Financial Analyst", Salary: decimal.NewFromInt(52000)},
}

// Seed inserts the default data unless the users table already has rows, so
// repeated initialization within one process never reseeds populated state.
// The whole seed runs in a single transaction.
func Seed(
	ctx context.Context,
	db *database.DB,
	users user.UserRepository,
	departments department.DepartmentRepository,
	employees employee.EmployeeRepository,
) error {
	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	return sqlite.WithTransaction(ctx, db, func(txCtx context.Context) error {
		if _, err := users.Create(txCtx, DefaultAdmin); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}

		departmentIDs := make(map[string]int64, len(DefaultDepartments))
		for _, d := range DefaultDepartments {
			head := d.Head
			created, err := departments.Create(txCtx, department.Department{
				Name: d.Name,
				Head: &head,
			})
			if err != nil {
				return fmt.Errorf("seed department %q: %w", d.Name, err)
			}
			departmentIDs[d.Name] = created.ID
		}

		for _, e := range DefaultEmployees {
			deptID, ok := departmentIDs[e.Department]
			if !ok {
				return fmt.Errorf("seed employee %q: unknown department %q", e.Code, e.Department)
			}

			_, err := employees.Create(txCtx, employee.Employee{
				EmployeeCode: e.Code,
				Name:         e.Name,
				Email:        e.Email,
				DepartmentID: deptID,
				Designation:  e.Designation,
				Salary:       e.Salary,
				Status:       employee.StatusActive,
			})
			if err != nil {
				return fmt.Errorf("seed employee %q: %w", e.Code, err)
			}

			if err := departments.AdjustEmployeeCount(txCtx, deptID, 1); err != nil {
				return fmt.Errorf("seed employee %q: %w", e.Code, err)
			}
		}

		return nil
	})
}
