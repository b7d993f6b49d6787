package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hrlite/crm-backend-go/internal/domain/user"
	"github.com/hrlite/crm-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByUsername implements user.UserRepository.
func (u *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, name, email, password, created_at
		FROM users
		WHERE username = ?
	`

	var found user.User
	err := q.QueryRowContext(ctx, query, username).Scan(
		&found.ID, &found.Username, &found.Name, &found.Email, &found.Password, &found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("get user by username: %w", err)
	}

	return found, nil
}

// ExistsByUsername implements user.UserRepository.
func (u *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, u.db)

	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}

	return exists, nil
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	newUser.CreatedAt = time.Now().UTC()

	result, err := q.ExecContext(ctx, `
		INSERT INTO users (username, name, email, password, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, newUser.Username, newUser.Name, newUser.Email, newUser.Password, newUser.CreatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	newUser.ID, err = result.LastInsertId()
	if err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	return newUser, nil
}

// Count implements user.UserRepository.
func (u *userRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, u.db)

	var count int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}
