package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hrlite/crm-backend-go/internal/domain/auth"
	"github.com/hrlite/crm-backend-go/internal/domain/user"
	"github.com/hrlite/crm-backend-go/internal/pkg/session"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	sessions *session.Store
}

func NewAuthService(userRepo user.UserRepository, sessions *session.Store) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		sessions: sessions,
	}
}

func mapUserToResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	}
}

// SignIn implements auth.AuthService. The credential check is an exact
// plaintext comparison; this tool is local and single-user.
func (a *AuthServiceImpl) SignIn(ctx context.Context, req auth.SignInRequest) (auth.SignInResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SignInResponse{}, err
	}

	userData, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.SignInResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SignInResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if userData.Password != req.Password {
		return auth.SignInResponse{}, auth.ErrInvalidCredentials
	}

	sess := a.sessions.Create(userData)
	slog.Info("user signed in", "username", userData.Username)

	return auth.SignInResponse{
		Token: sess.Token,
		User:  mapUserToResponse(userData),
	}, nil
}

// SignUp implements auth.AuthService.
func (a *AuthServiceImpl) SignUp(ctx context.Context, req auth.SignUpRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	exists, err := a.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return auth.UserResponse{}, user.ErrUsernameExists
	}

	created, err := a.userRepo.Create(ctx, user.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return mapUserToResponse(created), nil
}

// SignOut implements auth.AuthService. Dropping an unknown token is a no-op.
func (a *AuthServiceImpl) SignOut(_ context.Context, token string) {
	a.sessions.Delete(token)
}
