package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlite/crm-backend-go/internal/domain/attendance"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite/sqlitetest"
	attendancesvc "github.com/hrlite/crm-backend-go/internal/service/attendance"
)

func newDashboardService(t *testing.T) (*DashboardServiceImpl, *database.DB) {
	t.Helper()

	db := sqlitetest.NewTestDatabase(t)
	sqlitetest.SeedDefaults(t, db)

	return &DashboardServiceImpl{
		dashboardRepo: sqlite.NewDashboardRepository(db),
		now: func() time.Time {
			return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
		},
	}, db
}

func TestDashboardService_Summary_SeededState(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDashboardService(t)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalEmployees)
	assert.Equal(t, 4, summary.TotalDepartments)
	assert.Equal(t, 0, summary.LeaveRequests)
	assert.Equal(t, 0, summary.PresentToday)
	assert.Len(t, summary.RecentEmployees, 5)
}

func TestDashboardService_Summary_CountsTodaysAttendanceOnly(t *testing.T) {
	ctx := context.Background()
	svc, db := newDashboardService(t)

	marker := attendancesvc.NewAttendanceService(
		sqlite.NewAttendanceRepository(db),
		sqlite.NewEmployeeRepository(db),
	)

	_, err := marker.MarkAllPresent(ctx, attendance.MarkAllRequest{Date: "2024-01-09"})
	require.NoError(t, err)
	_, err = marker.MarkAllPresent(ctx, attendance.MarkAllRequest{Date: "2024-01-10"})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.PresentToday)
}
