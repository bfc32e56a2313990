package ports

import (
	"context"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeForOwner(ctx context.Context, bikeID, ownerID uuid.UUID) (*domain.Bike, error)
	GetBikesByUserID(ctx context.Context, userID uuid.UUID, status *domain.BikeStatus) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bikeID, ownerID uuid.UUID, upd domain.BikeUpdate) (*domain.Bike, error)
	CountBikesByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}

type ImageRepository interface {
	AddImages(ctx context.Context, bikeID, ownerID uuid.UUID, urls []string) ([]*domain.BikeImage, error)
	GetImagesByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.BikeImage, error)
}

type BikeService interface {
	RegisterBike(ctx context.Context, user domain.CurrentUser, bike *domain.Bike) (*domain.Bike, error)
	GetBike(ctx context.Context, user domain.CurrentUser, bikeID uuid.UUID) (*domain.Bike, error)
	ListOwned(ctx context.Context, user domain.CurrentUser) ([]*domain.Bike, error)
	ListAvailable(ctx context.Context, user domain.CurrentUser) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, user domain.CurrentUser, bikeID uuid.UUID, upd domain.BikeUpdate) (*domain.Bike, error)
	AttachImages(ctx context.Context, user domain.CurrentUser, bikeID uuid.UUID, refs []string) ([]*domain.BikeImage, error)
	UploadImages(ctx context.Context, user domain.CurrentUser, bikeID uuid.UUID, files []ImageFile) ([]*domain.BikeImage, error)
}
