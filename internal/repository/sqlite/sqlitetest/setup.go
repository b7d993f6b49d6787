// Package sqlitetest spins up migrated in-memory databases for tests.
package sqlitetest

import (
	"context"
	"testing"

	"github.com/hrlite/crm-backend-go/internal/fixtures"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
)

// NewTestDatabase opens a fresh in-memory database with the full schema.
// Every caller gets its own isolated database.
func NewTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlite.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

// SeedDefaults loads the default admin, departments and employees.
func SeedDefaults(t *testing.T, db *database.DB) {
	t.Helper()

	err := fixtures.Seed(
		context.Background(),
		db,
		sqlite.NewUserRepository(db),
		sqlite.NewDepartmentRepository(db),
		sqlite.NewEmployeeRepository(db),
	)
	if err != nil {
		t.Fatalf("seed test database: %v", err)
	}
}
