package report

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite/sqlitetest"
)

func TestReportService_Overview_SeededState(t *testing.T) {
	ctx := context.Background()

	db := sqlitetest.NewTestDatabase(t)
	sqlitetest.SeedDefaults(t, db)

	svc := NewReportService(sqlite.NewReportRepository(db))

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	require.Len(t, overview.Departments, 4)
	byName := make(map[string]int, len(overview.Departments))
	for _, dept := range overview.Departments {
		byName[dept.Name] = dept.EmployeeCount
	}
	assert.Equal(t, 2, byName["Finance"])
	assert.Equal(t, 1, byName["Human Resources"])
	assert.Equal(t, 1, byName["Information Technology"])
	assert.Equal(t, 1, byName["Marketing"])

	assert.Equal(t, 0, overview.LeaveRequests)

	// 50000 + 60000 + 70000 + 55000 + 52000
	assert.True(t, overview.TotalSalary.Equal(decimal.NewFromInt(287000)),
		"total salary %s", overview.TotalSalary)
}
