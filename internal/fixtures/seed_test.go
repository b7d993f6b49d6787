package fixtures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlite/crm-backend-go/internal/fixtures"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
)

func newSeededDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, sqlite.Migrate(ctx, db))
	require.NoError(t, fixtures.Seed(ctx, db,
		sqlite.NewUserRepository(db),
		sqlite.NewDepartmentRepository(db),
		sqlite.NewEmployeeRepository(db),
	))

	return db
}

func TestSeed_DefaultData(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)

	admin, err := sqlite.NewUserRepository(db).GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Admin User", admin.Name)
	assert.Equal(t, "admin123", admin.Password)

	departments, err := sqlite.NewDepartmentRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 4)

	totalCount := 0
	for _, dept := range departments {
		totalCount += dept.EmployeeCount
	}
	assert.Equal(t, 5, totalCount, "department counts should cover all seeded employees")

	employees, err := sqlite.NewEmployeeRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 5)
	assert.Equal(t, "EMP001", employees[0].EmployeeCode)
	assert.Equal(t, "Finance", employees[0].DepartmentName)
}

func TestSeed_IdempotentAgainstPopulatedState(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)

	// A second initialization attempt must not reseed.
	require.NoError(t, fixtures.Seed(ctx, db,
		sqlite.NewUserRepository(db),
		sqlite.NewDepartmentRepository(db),
		sqlite.NewEmployeeRepository(db),
	))

	departments, err := sqlite.NewDepartmentRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, departments, 4)

	employees, err := sqlite.NewEmployeeRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 5)
}
