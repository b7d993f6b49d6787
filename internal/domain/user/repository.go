package user

import "context"

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	Count(ctx context.Context) (int, error)
}
