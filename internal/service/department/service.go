package department

import (
	"context"
	"fmt"

	"github.com/hrlite/crm-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

func mapDepartmentToResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Head:          dept.Head,
		EmployeeCount: dept.EmployeeCount,
		CreatedAt:     dept.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, mapDepartmentToResponse(dept))
	}

	return responses, nil
}

// CreateDepartment implements department.DepartmentService. New departments
// start with an employee count of zero; the count only ever moves through
// employee writes.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	exists, err := s.departmentRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return department.DepartmentResponse{}, department.ErrDepartmentNameExists
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name: req.Name,
		Head: req.Head,
	})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return mapDepartmentToResponse(created), nil
}
