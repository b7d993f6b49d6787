package dashboard

import "context"

type DashboardService interface {
	// Summary feeds the landing view: headline counts plus the five most
	// recently added employees.
	Summary(ctx context.Context) (SummaryResponse, error)
}
