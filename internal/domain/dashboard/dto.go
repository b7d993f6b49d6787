package dashboard

import "github.com/hrlite/crm-backend-go/internal/domain/employee"

type SummaryResponse struct {
	TotalEmployees   int                         `json:"total_employees"`
	PresentToday     int                         `json:"present_today"`
	TotalDepartments int                         `json:"total_departments"`
	LeaveRequests    int                         `json:"leave_requests"`
	RecentEmployees  []employee.EmployeeResponse `json:"recent_employees"`
}
