package report

import "github.com/shopspring/decimal"

type DepartmentHeadcount struct {
	Name          string `json:"name"`
	EmployeeCount int    `json:"employee_count"`
}

// OverviewResponse feeds the reports view, including the per-department
// bar chart.
type OverviewResponse struct {
	Departments   []DepartmentHeadcount `json:"departments"`
	LeaveRequests int                   `json:"leave_requests"`
	TotalSalary   decimal.Decimal       `json:"total_salary"`
}
