package attendance

import (
	"github.com/hrlite/crm-backend-go/internal/pkg/validator"
)

type MarkAllRequest struct {
	// Date defaults to today when empty.
	Date string `json:"date,omitempty"`
}

func (r MarkAllRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAllResponse struct {
	Date   string `json:"date"`
	Marked int    `json:"marked"`
}

type AttendanceResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	InTime       string  `json:"in_time"`
	OutTime      *string `json:"out_time,omitempty"`
	Status       string  `json:"status"`
}
