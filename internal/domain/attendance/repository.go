package attendance

import "context"

type AttendanceRepository interface {
	List(ctx context.Context, limit int) ([]Attendance, error)
	ExistsForDate(ctx context.Context, employeeID int64, date string) (bool, error)
	Create(ctx context.Context, record Attendance) (Attendance, error)
}
