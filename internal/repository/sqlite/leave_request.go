package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/hrlite/crm-backend-go/internal/domain/leave"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// List implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	rows, err := q.QueryContext(ctx, `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.from_date, lr.to_date,
			lr.days, lr.reason, lr.status, lr.created_at, COALESCE(e.name, '')
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		ORDER BY lr.created_at DESC, lr.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.FromDate, &req.ToDate,
			&req.Days, &req.Reason, &req.Status, &req.CreatedAt, &req.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// Create implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	req.CreatedAt = time.Now().UTC()

	result, err := q.ExecContext(ctx, `
		INSERT INTO leave_requests (employee_id, leave_type, from_date, to_date, days, reason, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, req.EmployeeID, req.LeaveType, req.FromDate, req.ToDate, req.Days, req.Reason, req.Status, req.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("insert leave request: %w", err)
	}

	req.ID, err = result.LastInsertId()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("insert leave request: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status leave.Status) error {
	q := GetQuerier(ctx, l.db)

	result, err := q.ExecContext(ctx,
		`UPDATE leave_requests SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return fmt.Errorf("update leave status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update leave status: %w", err)
	}
	if affected == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}
