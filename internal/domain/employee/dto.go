package employee

import (
	"github.com/shopspring/decimal"

	"github.com/hrlite/crm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	DepartmentID int64           `json:"department_id"`
	Designation  string          `json:"designation"`
	Salary       decimal.Decimal `json:"salary"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department is required"})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "designation is required"})
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a positive number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           int64           `json:"-"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	DepartmentID int64           `json:"department_id"`
	Designation  string          `json:"designation"`
	Salary       decimal.Decimal `json:"salary"`
	Status       string          `json:"status"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department is required"})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "designation is required"})
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a positive number"})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Active or Inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             int64           `json:"id"`
	EmployeeCode   string          `json:"employee_code"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	DepartmentID   int64           `json:"department_id"`
	DepartmentName string          `json:"department_name"`
	Designation    string          `json:"designation"`
	Salary         decimal.Decimal `json:"salary"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at"`
}

type NextCodeResponse struct {
	EmployeeCode string `json:"employee_code"`
}
