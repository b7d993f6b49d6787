package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hrlite/crm-backend-go/internal/domain/department"
	"github.com/hrlite/crm-backend-go/internal/domain/employee"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		Name:           emp.Name,
		Email:          emp.Email,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		Designation:    emp.Designation,
		Salary:         emp.Salary,
		Status:         string(emp.Status),
		CreatedAt:      emp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// NextCode implements employee.EmployeeService: the highest numeric suffix
// among existing codes plus one, zero-padded to three digits.
func (s *EmployeeServiceImpl) NextCode(ctx context.Context) (employee.NextCodeResponse, error) {
	code, err := s.nextCode(ctx)
	if err != nil {
		return employee.NextCodeResponse{}, err
	}
	return employee.NextCodeResponse{EmployeeCode: code}, nil
}

func (s *EmployeeServiceImpl) nextCode(ctx context.Context) (string, error) {
	max, err := s.employeeRepo.MaxCodeNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to compute next employee code: %w", err)
	}
	return fmt.Sprintf("EMP%03d", max+1), nil
}

// CreateEmployee implements employee.EmployeeService. The insert and the
// department count increment commit or roll back together.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err = sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		code, err := s.nextCode(txCtx)
		if err != nil {
			return err
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeCode: code,
			Name:         req.Name,
			Email:        req.Email,
			DepartmentID: dept.ID,
			Designation:  req.Designation,
			Salary:       req.Salary,
			Status:       employee.StatusActive,
		})
		if err != nil {
			return err
		}

		return s.departmentRepo.AdjustEmployeeCount(txCtx, dept.ID, 1)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_code", created.EmployeeCode, "department", dept.Name)

	created.DepartmentName = dept.Name
	return mapEmployeeToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService. Moving an employee to
// another department shifts the headcount between the two departments inside
// the same transaction as the row update.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated := employee.Employee{
		ID:           current.ID,
		EmployeeCode: current.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		DepartmentID: dept.ID,
		Designation:  req.Designation,
		Salary:       req.Salary,
		Status:       employee.Status(req.Status),
		CreatedAt:    current.CreatedAt,
	}

	err = sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, updated); err != nil {
			return err
		}

		if current.DepartmentID != dept.ID {
			if err := s.departmentRepo.AdjustEmployeeCount(txCtx, current.DepartmentID, -1); err != nil {
				return err
			}
			if err := s.departmentRepo.AdjustEmployeeCount(txCtx, dept.ID, 1); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated.DepartmentName = dept.Name
	return mapEmployeeToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService. History rows in
// attendance, leave and payroll stay behind on purpose. Deleting an unknown
// ID succeeds silently.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil
		}
		return err
	}

	err = sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Delete(txCtx, id); err != nil {
			return err
		}
		return s.departmentRepo.AdjustEmployeeCount(txCtx, current.DepartmentID, -1)
	})
	if err != nil {
		return err
	}

	slog.Info("employee deleted", "employee_code", current.EmployeeCode)
	return nil
}
