package leave

import "context"

type LeaveRepository interface {
	List(ctx context.Context) ([]LeaveRequest, error)
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}
