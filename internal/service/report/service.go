package report

import (
	"context"
	"fmt"

	"github.com/hrlite/crm-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

// Overview implements report.ReportService.
func (s *ReportServiceImpl) Overview(ctx context.Context) (report.OverviewResponse, error) {
	headcounts, err := s.reportRepo.DepartmentHeadcounts(ctx)
	if err != nil {
		return report.OverviewResponse{}, fmt.Errorf("failed to load department headcounts: %w", err)
	}

	leaveRequests, err := s.reportRepo.CountLeaveRequests(ctx)
	if err != nil {
		return report.OverviewResponse{}, fmt.Errorf("failed to count leave requests: %w", err)
	}

	totalSalary, err := s.reportRepo.TotalSalary(ctx)
	if err != nil {
		return report.OverviewResponse{}, fmt.Errorf("failed to sum salaries: %w", err)
	}

	return report.OverviewResponse{
		Departments:   headcounts,
		LeaveRequests: leaveRequests,
		TotalSalary:   totalSalary,
	}, nil
}
