package leave

import (
	"time"

	"github.com/hrlite/crm-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID int64  `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	Reason     string `json:"reason"`
}

func (r CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee is required"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave type is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	var from, to time.Time
	var fromOK, toOK bool
	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from date is required"})
	} else if from, fromOK = validator.IsValidDate(r.FromDate); !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.ToDate) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to date is required"})
	} else if to, toOK = validator.IsValidDate(r.ToDate); !toOK {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to date must be in YYYY-MM-DD format"})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to date must not be before from date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Days returns the inclusive day count of the requested range. Validate must
// have accepted the request first.
func (r CreateLeaveRequest) CalculateDays() int {
	from, _ := time.Parse("2006-01-02", r.FromDate)
	to, _ := time.Parse("2006-01-02", r.ToDate)
	return int(to.Sub(from).Hours()/24) + 1
}

type LeaveResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
	Days         int    `json:"days"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}
