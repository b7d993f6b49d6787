package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hrlite/crm-backend-go/internal/domain/leave"
	"github.com/hrlite/crm-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	CreateLeaveRequest(w http.ResponseWriter, r *http.Request)
	ApproveLeaveRequest(w http.ResponseWriter, r *http.Request)
	RejectLeaveRequest(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func leaveIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// ListLeaveRequests implements LeaveHandler
func (h *leaveHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.ListLeaveRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully!", result)
}

// ApproveLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) ApproveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := leaveIDParam(r)
	if !ok {
		response.BadRequest(w, "Leave request ID must be a positive integer", nil)
		return
	}

	if err := h.leaveService.ApproveLeaveRequest(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved!", nil)
}

// RejectLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) RejectLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := leaveIDParam(r)
	if !ok {
		response.BadRequest(w, "Leave request ID must be a positive integer", nil)
		return
	}

	if err := h.leaveService.RejectLeaveRequest(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected!", nil)
}
