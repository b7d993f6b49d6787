package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/hrlite/crm-backend-go/internal/domain/payroll"
	"github.com/hrlite/crm-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPayroll(w http.ResponseWriter, r *http.Request)
	RunPayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ListPayroll implements PayrollHandler
func (h *payrollHandlerImpl) ListPayroll(w http.ResponseWriter, r *http.Request) {
	results, err := h.payrollService.ListPayroll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// RunPayroll implements PayrollHandler. The body is optional; an empty one
// runs the current month.
func (h *payrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.RunForMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll processed for "+strconv.Itoa(result.Processed)+" employees!", result)
}
