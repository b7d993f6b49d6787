package attendance

import "time"

type Attendance struct {
	ID         int64
	EmployeeID int64
	// Date is the attendance day in "2006-01-02" form; InTime/OutTime are
	// wall-clock times in "15:04:05" form.
	Date      string
	InTime    string
	OutTime   *string
	Status    string
	CreatedAt time.Time

	// Joined fields
	EmployeeName string
}

const StatusPresent = "Present"
