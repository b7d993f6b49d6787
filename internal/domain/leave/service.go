package leave

import "context"

type LeaveService interface {
	// CreateLeaveRequest computes the inclusive day count and files the
	// request as Pending.
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// ApproveLeaveRequest and RejectLeaveRequest overwrite the status
	// unconditionally, whatever its current value.
	ApproveLeaveRequest(ctx context.Context, id int64) error
	RejectLeaveRequest(ctx context.Context, id int64) error

	// ListLeaveRequests returns requests newest first.
	ListLeaveRequests(ctx context.Context) ([]LeaveResponse, error)
}
