package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/hrlite/crm-backend-go/internal/domain/attendance"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.QueryContext(ctx, `
		SELECT a.id, a.employee_id, a.date, a.in_time, a.out_time, a.status, a.created_at,
			COALESCE(e.name, '')
		FROM attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC, a.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.InTime, &rec.OutTime,
			&rec.Status, &rec.CreatedAt, &rec.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ExistsForDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ExistsForDate(ctx context.Context, employeeID int64, date string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance WHERE employee_id = ? AND date = ?)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check attendance exists: %w", err)
	}

	return exists, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	record.CreatedAt = time.Now().UTC()

	result, err := q.ExecContext(ctx, `
		INSERT INTO attendance (employee_id, date, in_time, out_time, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.EmployeeID, record.Date, record.InTime, record.OutTime, record.Status, record.CreatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}

	record.ID, err = result.LastInsertId()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("insert attendance: %w", err)
	}

	return record, nil
}
