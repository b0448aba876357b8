package repository

import (
	"context"

	"inbot/internal/model"
)

// UserRepository persists accounts and profiles.
type UserRepository interface {
	// Create returns ErrDuplicate when the email is taken.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id, name, bio string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id, url, path string) (*model.User, error)
}
