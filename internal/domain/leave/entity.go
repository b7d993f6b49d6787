package leave

import "time"

type LeaveRequest struct {
	ID         int64
	EmployeeID int64
	LeaveType  string
	FromDate   string
	ToDate     string
	// Days counts both endpoints inclusively.
	Days      int
	Reason    string
	Status    Status
	CreatedAt time.Time

	// Joined fields
	EmployeeName string
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)
