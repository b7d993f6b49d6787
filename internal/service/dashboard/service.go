package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/hrlite/crm-backend-go/internal/domain/dashboard"
	"github.com/hrlite/crm-backend-go/internal/domain/employee"
)

const recentEmployeeLimit = 5

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	now           func() time.Time
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		now:           time.Now,
	}
}

// Summary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.SummaryResponse, error) {
	totalEmployees, err := s.dashboardRepo.CountEmployees(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	totalDepartments, err := s.dashboardRepo.CountDepartments(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count departments: %w", err)
	}

	leaveRequests, err := s.dashboardRepo.CountLeaveRequests(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count leave requests: %w", err)
	}

	today := s.now().Format("2006-01-02")
	presentToday, err := s.dashboardRepo.CountPresentOn(ctx, today)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}

	recent, err := s.dashboardRepo.RecentEmployees(ctx, recentEmployeeLimit)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to list recent employees: %w", err)
	}

	recentResponses := make([]employee.EmployeeResponse, 0, len(recent))
	for _, emp := range recent {
		recentResponses = append(recentResponses, employee.EmployeeResponse{
			ID:             emp.ID,
			EmployeeCode:   emp.EmployeeCode,
			Name:           emp.Name,
			Email:          emp.Email,
			DepartmentID:   emp.DepartmentID,
			DepartmentName: emp.DepartmentName,
			Designation:    emp.Designation,
			Salary:         emp.Salary,
			Status:         string(emp.Status),
			CreatedAt:      emp.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return dashboard.SummaryResponse{
		TotalEmployees:   totalEmployees,
		PresentToday:     presentToday,
		TotalDepartments: totalDepartments,
		LeaveRequests:    leaveRequests,
		RecentEmployees:  recentResponses,
	}, nil
}
