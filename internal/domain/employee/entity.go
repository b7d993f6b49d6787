package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           int64
	EmployeeCode string
	Name         string
	Email        string
	DepartmentID int64
	Designation  string
	Salary       decimal.Decimal
	Status       Status
	CreatedAt    time.Time

	// Joined fields
	DepartmentName string
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)
