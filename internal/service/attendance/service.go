package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrlite/crm-backend-go/internal/domain/attendance"
	"github.com/hrlite/crm-backend-go/internal/domain/employee"
)

const defaultListLimit = 50

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	// now is swappable so tests can pin the wall clock.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// MarkAllPresent implements attendance.AttendanceService. Employees already
// marked for the date are skipped, so rerunning a date never double-marks.
func (s *AttendanceServiceImpl) MarkAllPresent(ctx context.Context, req attendance.MarkAllRequest) (attendance.MarkAllResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAllResponse{}, err
	}

	date := req.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	inTime := s.now().Format("15:04:05")

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return attendance.MarkAllResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		exists, err := s.attendanceRepo.ExistsForDate(ctx, emp.ID, date)
		if err != nil {
			return attendance.MarkAllResponse{}, fmt.Errorf("failed to check attendance for %s: %w", emp.EmployeeCode, err)
		}
		if exists {
			continue
		}

		_, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			InTime:     inTime,
			Status:     attendance.StatusPresent,
		})
		if err != nil {
			return attendance.MarkAllResponse{}, fmt.Errorf("failed to mark attendance for %s: %w", emp.EmployeeCode, err)
		}
		marked++
	}

	slog.Info("attendance marked", "date", date, "marked", marked)

	return attendance.MarkAllResponse{Date: date, Marked: marked}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, limit int) ([]attendance.AttendanceResponse, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	records, err := s.attendanceRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.AttendanceResponse{
			ID:           rec.ID,
			EmployeeID:   rec.EmployeeID,
			EmployeeName: rec.EmployeeName,
			Date:         rec.Date,
			InTime:       rec.InTime,
			OutTime:      rec.OutTime,
			Status:       rec.Status,
		})
	}

	return responses, nil
}
