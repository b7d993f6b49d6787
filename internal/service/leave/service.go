package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrlite/crm-backend-go/internal/domain/employee"
	"github.com/hrlite/crm-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func mapLeaveToResponse(req leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		LeaveType:    req.LeaveType,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
		Days:         req.Days,
		Reason:       req.Reason,
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateLeaveRequest implements leave.LeaveService. The day count includes
// both endpoints; a range ending before it starts is rejected by Validate.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		LeaveType:  req.LeaveType,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		Days:       req.CalculateDays(),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("leave request filed", "employee", emp.EmployeeCode, "days", created.Days)

	created.EmployeeName = emp.Name
	return mapLeaveToResponse(created), nil
}

// ApproveLeaveRequest implements leave.LeaveService. The overwrite is
// unconditional: an already rejected request can still be approved.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, id int64) error {
	return s.leaveRepo.UpdateStatus(ctx, id, leave.StatusApproved)
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, id int64) error {
	return s.leaveRepo.UpdateStatus(ctx, id, leave.StatusRejected)
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapLeaveToResponse(req))
	}

	return responses, nil
}
