package report

import "context"

type ReportService interface {
	Overview(ctx context.Context) (OverviewResponse, error)
}
