package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BikeService struct {
	bikeRepo  ports.BikeRepository
	imageRepo ports.ImageRepository
	storage   ports.ImageStoragePort
	logger    ports.LoggerPort
	validate  *validator.Validate
	cache     ports.CachePort
	cacheTTL  time.Duration
}

// NewBikeService builds the bike service. storage may be nil, in which case
// multipart uploads are refused and only image URLs can be attached.
func NewBikeService(
	bikeRepo ports.BikeRepository,
	imageRepo ports.ImageRepository,
	storage ports.ImageStoragePort,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	cacheTTL time.Duration,
) *BikeService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultBikeCacheTTL
	}
	return &BikeService{
		bikeRepo:  bikeRepo,
		imageRepo: imageRepo,
		storage:   storage,
		logger:    logger,
		validate:  validate,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (s *BikeService) RegisterBike(ctx context.Context, user domain.CurrentUser, bike *domain.Bike) (*domain.Bike, error) {
	bike.ID = uuid.New()
	bike.UserID = user.ID
	bike.Status = domain.BikeRegistered
	bike.ImageURL = ""
	bike.Images = nil

	if err := s.validate.Struct(bike); err != nil {
		s.logger.Warn("Bike validation failed", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, domain.ValidationIssues(err)
	}

	createdBike, err := s.bikeRepo.CreateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, err
	}

	s.logger.Info("Bike registered", map[string]interface{}{
		"bike_id": createdBike.ID,
		"user_id": createdBike.UserID,
	})

	return createdBike, nil
}

// GetBike returns an owned bike with its gallery. A cached copy is only served
// back to its owner.
func (s *BikeService) GetBike(ctx context.Context, user domain.CurrentUser, bikeID uuid.UUID) (*domain.Bike, error) {
	cacheKey := bikeCacheKey(bikeID)

	var cached domain.Bike
	if cacheGet(s.cache, cacheKey, &cached) {
		if cached.UserID != user.ID {
			return nil, domain.ErrBikeNotFound
		}
		s.logger.Debug("Bike found in cache", map[string]interface{}{
			"bike_id": bikeID,
		})
		return &cached, nil
	}

	bike, err := s.bikeRepo.GetBikeForOwner(ctx, bikeID, user.ID)
	if err != nil {
		s.logger.Warn("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
			"user_id": user.ID,
		})
		return nil, err
	}

	images, err := s.imageRepo.GetImagesByBikeID(ctx, bikeID)
	if err != nil {
		s.logger.Warn("Failed to get bike images", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		images = []*domain.BikeImage{}
	}
	bike.Images = images

	cacheSet(s.cache, s.logger, cacheKey, bike, s.cacheTTL)

	return bike, nil
}

func (s *BikeService) ListOwned(ctx context.Context, user domain.CurrentUser) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.GetBikesByUserID(ctx, user.ID, nil)
	if err != nil {
		s.logger.Error("Failed to list bikes", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, err
	}
	return bikes, nil
}

// ListAvailable returns the bikes that can still be reported stolen.
func (s *BikeService) ListAvailable(ctx context.Context, user domain.CurrentUser) ([]*domain.Bike, error) {
	status := domain.BikeRegistered
	bikes, err := s.bikeRepo.GetBikesByUserID(ctx, user.ID, &status)
	if err != nil {
		s.logger.Error("Failed to list available bikes", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, err
	}
	return bikes, nil
}

func (s *BikeService) UpdateBike(ctx context.Context, user domain.CurrentUser, bikeID uuid.UUID, upd domain.BikeUpdate) (*domain.Bike, error) {
	if upd.Empty() {
		return nil, domain.NewValidationError("body", "no fields to update")
	}
	if err := s.validate.Struct(upd); err != nil {
		return nil, domain.ValidationIssues(err)
	}

	updatedBike, err := s.bikeRepo.UpdateBike(ctx, bikeID, user.ID, upd)
	if err != nil {
		s.logger.Warn("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
			"user_id": user.ID,
		})
		return nil, err
	}

	cacheDelete(s.cache, s.logger, bikeCacheKey(bikeID))

	s.logger.Info("Bike updated", map[string]interface{}{
		"bike_id": bikeID,
	})

	return updatedBike, nil
}

// AttachImages stores every reference in order. The first one becomes the
// bike's primary image.
func (s *BikeService) AttachImages(ctx context.Context, user domain.CurrentUser, bikeID uuid.UUID, refs []string) ([]*domain.BikeImage, error) {
	if err := checkImageRefs(refs); err != nil {
		return nil, err
	}

	images, err := s.imageRepo.AddImages(ctx, bikeID, user.ID, refs)
	if err != nil {
		s.logger.Warn("Failed to attach images", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
			"user_id": user.ID,
		})
		return nil, err
	}

	cacheDelete(s.cache, s.logger, bikeCacheKey(bikeID))

	s.logger.Info("Images attached", map[string]interface{}{
		"bike_id": bikeID,
		"count":   len(images),
	})

	return images, nil
}

// UploadImages pushes the files to image storage and attaches the resulting
// URLs. Ownership is checked before anything is uploaded.
func (s *BikeService) UploadImages(ctx context.Context, user domain.CurrentUser, bikeID uuid.UUID, files []ports.ImageFile) ([]*domain.BikeImage, error) {
	if s.storage == nil {
		return nil, domain.ErrUploadsNotAvailable
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("images", "at least one image is required")
	}
	if len(files) > domain.MaxImagesPerAdd {
		return nil, domain.NewValidationError("images", fmt.Sprintf("at most %d images per request", domain.MaxImagesPerAdd))
	}

	if _, err := s.bikeRepo.GetBikeForOwner(ctx, bikeID, user.ID); err != nil {
		return nil, err
	}

	folder := fmt.Sprintf("bikes/%s", bikeID.String())
	urls := make([]string, 0, len(files))
	for _, file := range files {
		u, err := s.storage.Upload(ctx, file, folder)
		if err != nil {
			s.logger.Error("Failed to upload image", map[string]interface{}{
				"error":   err.Error(),
				"bike_id": bikeID,
				"file":    file.Name,
			})
			return nil, fmt.Errorf("failed to upload %s: %w", file.Name, err)
		}
		urls = append(urls, u)
	}

	return s.AttachImages(ctx, user, bikeID, urls)
}

func checkImageRefs(refs []string) error {
	if len(refs) == 0 {
		return domain.NewValidationError("images", "at least one image is required")
	}
	if len(refs) > domain.MaxImagesPerAdd {
		return domain.NewValidationError("images", fmt.Sprintf("at most %d images per request", domain.MaxImagesPerAdd))
	}

	verr := &domain.ValidationError{}
	for i, ref := range refs {
		u, err := url.Parse(ref)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			verr.Add(fmt.Sprintf("images[%d]", i), "must be an http(s) URL")
		}
	}
	return verr.OrNil()
}
