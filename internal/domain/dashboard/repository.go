package dashboard

import (
	"context"

	"github.com/hrlite/crm-backend-go/internal/domain/employee"
)

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int, error)
	CountDepartments(ctx context.Context) (int, error)
	CountLeaveRequests(ctx context.Context) (int, error)
	CountPresentOn(ctx context.Context, date string) (int, error)
	RecentEmployees(ctx context.Context, limit int) ([]employee.Employee, error)
}
