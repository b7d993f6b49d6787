package database

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// NewSQLiteDB opens the embedded SQLite store. The default DSN ":memory:" gives a
// database that lives only for the process lifetime and is rebuilt from seed
// on every start.
func NewSQLiteDB(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// An in-memory database exists per connection: a second connection from
	// the pool would see a fresh empty database. Pin the pool to a single
	// connection, which also matches the single-user execution model.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{DB: db}, nil
}

func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.DB.BeginTx(ctx, nil)
}

type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
