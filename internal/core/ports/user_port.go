package ports

import (
	"context"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

type UserRepository interface {
	EnsureUser(ctx context.Context, userID uuid.UUID, username string) error
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error
}

type ProfileService interface {
	EnsureUser(ctx context.Context, user domain.CurrentUser) error
	GetProfile(ctx context.Context, user domain.CurrentUser) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, user domain.CurrentUser, upd domain.ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, user domain.CurrentUser, current, next string) error
}
