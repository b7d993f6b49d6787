package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlite/crm-backend-go/internal/domain/auth"
	"github.com/hrlite/crm-backend-go/internal/domain/user"
	"github.com/hrlite/crm-backend-go/internal/pkg/session"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite"
	"github.com/hrlite/crm-backend-go/internal/repository/sqlite/sqlitetest"
)

func newAuthService(t *testing.T) (auth.AuthService, *session.Store) {
	t.Helper()

	db := sqlitetest.NewTestDatabase(t)
	sqlitetest.SeedDefaults(t, db)
	sessions := session.NewStore()

	return NewAuthService(sqlite.NewUserRepository(db), sessions), sessions
}

func TestAuthService_SignIn_Success(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newAuthService(t)

	result, err := svc.SignIn(ctx, auth.SignInRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", result.User.Username)
	assert.NotEmpty(t, result.Token)

	sess, ok := sessions.Get(result.Token)
	require.True(t, ok, "token should resolve to a live session")
	assert.Equal(t, result.User.ID, sess.User.ID)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.SignIn(ctx, auth.SignInRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_SignIn_UnknownUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.SignIn(ctx, auth.SignInRequest{Username: "nobody", Password: "admin123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	created, err := svc.SignUp(ctx, auth.SignUpRequest{
		Name:     "New User",
		Username: "newuser",
		Email:    "new@crm.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "newuser", created.Username)

	// The new account can sign in straight away.
	_, err = svc.SignIn(ctx, auth.SignInRequest{Username: "newuser", Password: "secret"})
	assert.NoError(t, err)
}

func TestAuthService_SignUp_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.SignUp(ctx, auth.SignUpRequest{
		Name:     "Other Admin",
		Username: "admin",
		Email:    "other@crm.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestAuthService_SignOut(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newAuthService(t)

	result, err := svc.SignIn(ctx, auth.SignInRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	svc.SignOut(ctx, result.Token)
	_, ok := sessions.Get(result.Token)
	assert.False(t, ok, "session should be gone after sign-out")

	// Signing out an unknown token is a no-op.
	svc.SignOut(ctx, "not-a-token")
}
