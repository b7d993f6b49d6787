package sqlite

import (
	"context"
	"fmt"

	"github.com/hrlite/crm-backend-go/internal/pkg/database"
)

// Migrate brings an empty in-memory database up to the current schema. Every
// statement is create-if-absent, so running it against an already migrated
// database changes nothing.
func Migrate(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS departments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			head TEXT,
			employee_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_code TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			department_id INTEGER NOT NULL REFERENCES departments(id),
			designation TEXT NOT NULL,
			salary NUMERIC NOT NULL,
			status TEXT NOT NULL DEFAULT 'Active',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS leave_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER NOT NULL,
			leave_type TEXT NOT NULL,
			from_date TEXT NOT NULL,
			to_date TEXT NOT NULL,
			days INTEGER NOT NULL,
			reason TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			in_time TEXT NOT NULL,
			out_time TEXT,
			status TEXT NOT NULL DEFAULT 'Present',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payroll (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER NOT NULL,
			basic_salary NUMERIC NOT NULL,
			allowances NUMERIC NOT NULL DEFAULT 0,
			deductions NUMERIC NOT NULL DEFAULT 0,
			net_salary NUMERIC NOT NULL,
			status TEXT NOT NULL DEFAULT 'Processed',
			month TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}

	// leave_requests, attendance and payroll reference employees without a
	// cascading constraint: deleting an employee keeps its history rows.

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
