package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlite/crm-backend-go/internal/domain/attendance"
	"github.com/hrlite/crm-backend-go/internal/pkg/validator"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite/sqlitetest"
)

func newAttendanceService(t *testing.T) *AttendanceServiceImpl {
	t.Helper()

	db := sqlitetest.NewTestDatabase(t)
	sqlitetest.SeedDefaults(t, db)

	return &AttendanceServiceImpl{
		attendanceRepo: sqlite.NewAttendanceRepository(db),
		employeeRepo:   sqlite.NewEmployeeRepository(db),
		now: func() time.Time {
			return time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
		},
	}
}

func TestAttendanceService_MarkAllPresent(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	res, err := svc.MarkAllPresent(ctx, attendance.MarkAllRequest{Date: "2024-01-10"})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", res.Date)
	assert.Equal(t, 5, res.Marked)

	records, err := svc.ListAttendance(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 5)
	for _, rec := range records {
		assert.Equal(t, "2024-01-10", rec.Date)
		assert.Equal(t, "09:30:00", rec.InTime)
		assert.Equal(t, attendance.StatusPresent, rec.Status)
		assert.Nil(t, rec.OutTime)
		assert.NotEmpty(t, rec.EmployeeName)
	}
}

func TestAttendanceService_MarkAllPresent_SecondRunMarksNobody(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	first, err := svc.MarkAllPresent(ctx, attendance.MarkAllRequest{Date: "2024-01-10"})
	require.NoError(t, err)
	require.Equal(t, 5, first.Marked)

	second, err := svc.MarkAllPresent(ctx, attendance.MarkAllRequest{Date: "2024-01-10"})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Marked)

	records, err := svc.ListAttendance(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestAttendanceService_MarkAllPresent_DateDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	res, err := svc.MarkAllPresent(ctx, attendance.MarkAllRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", res.Date)
	assert.Equal(t, 5, res.Marked)
}

func TestAttendanceService_MarkAllPresent_InvalidDate(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	_, err := svc.MarkAllPresent(ctx, attendance.MarkAllRequest{Date: "10-01-2024"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAttendanceService_ListAttendance_NewestDateFirst(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	_, err := svc.MarkAllPresent(ctx, attendance.MarkAllRequest{Date: "2024-01-09"})
	require.NoError(t, err)
	_, err = svc.MarkAllPresent(ctx, attendance.MarkAllRequest{Date: "2024-01-10"})
	require.NoError(t, err)

	records, err := svc.ListAttendance(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 10)

	for _, rec := range records[:5] {
		assert.Equal(t, "2024-01-10", rec.Date)
	}
	for _, rec := range records[5:] {
		assert.Equal(t, "2024-01-09", rec.Date)
	}
}

func TestAttendanceService_ListAttendance_LimitClamped(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	_, err := svc.MarkAllPresent(ctx, attendance.MarkAllRequest{Date: "2024-01-10"})
	require.NoError(t, err)

	records, err := svc.ListAttendance(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
