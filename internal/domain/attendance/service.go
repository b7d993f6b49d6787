package attendance

import "context"

type AttendanceService interface {
	// MarkAllPresent inserts a Present record for every active employee
	// without one for the given date and reports how many were inserted.
	// A second run for the same date marks nobody.
	MarkAllPresent(ctx context.Context, req MarkAllRequest) (MarkAllResponse, error)

	// ListAttendance returns records ordered by date descending.
	ListAttendance(ctx context.Context, limit int) ([]AttendanceResponse, error)
}
