package department

import (
	"github.com/hrlite/crm-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name string  `json:"name"`
	Head *string `json:"head,omitempty"`
}

func (r CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "department name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Head          *string `json:"head,omitempty"`
	EmployeeCount int     `json:"employee_count"`
	CreatedAt     string  `json:"created_at"`
}
