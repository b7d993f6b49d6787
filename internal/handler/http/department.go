package http

import (
	"encoding/json"
	"net/http"

	"github.com/hrlite/crm-backend-go/internal/domain/department"
	"github.com/hrlite/crm-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &departmentHandlerImpl{departmentService: departmentService}
}

// ListDepartments implements DepartmentHandler
func (h *departmentHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	results, err := h.departmentService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateDepartment implements DepartmentHandler
func (h *departmentHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department added successfully!", result)
}
