package auth

import "context"

// AuthService gates access to the rest of the system. Credentials live in the
// users table; the session marker lives in process memory for the lifetime of
// the tab that holds its token.
type AuthService interface {
	SignIn(ctx context.Context, req SignInRequest) (SignInResponse, error)
	SignUp(ctx context.Context, req SignUpRequest) (UserResponse, error)
	SignOut(ctx context.Context, token string)
}
