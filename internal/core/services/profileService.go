package services

import (
	"context"
	"errors"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type ProfileService struct {
	userRepo   ports.UserRepository
	bikeRepo   ports.BikeRepository
	reportRepo ports.ReportRepository
	logger     ports.LoggerPort
	validate   *validator.Validate
	cache      ports.CachePort
	cacheTTL   time.Duration
}

func NewProfileService(
	userRepo ports.UserRepository,
	bikeRepo ports.BikeRepository,
	reportRepo ports.ReportRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	cacheTTL time.Duration,
) *ProfileService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultUserCacheTTL
	}
	return &ProfileService{
		userRepo:   userRepo,
		bikeRepo:   bikeRepo,
		reportRepo: reportRepo,
		logger:     logger,
		validate:   validate,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// EnsureUser creates the local account of an authenticated caller on first use.
// Known accounts are remembered in the cache so later requests skip the write.
func (s *ProfileService) EnsureUser(ctx context.Context, user domain.CurrentUser) error {
	cacheKey := userCacheKey(user.ID)
	if _, err := s.cache.Get(cacheKey); err == nil {
		return nil
	}

	if err := s.userRepo.EnsureUser(ctx, user.ID, user.Username); err != nil {
		s.logger.Error("Failed to ensure user", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return err
	}

	if err := s.cache.Set(cacheKey, []byte("1"), s.cacheTTL); err != nil {
		s.logger.Warn("Failed to write cache", map[string]interface{}{
			"error": err.Error(),
			"key":   cacheKey,
		})
	}
	return nil
}

func (s *ProfileService) GetProfile(ctx context.Context, user domain.CurrentUser) (*domain.Profile, error) {
	u, err := s.userRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	bikes, err := s.bikeRepo.CountBikesByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	active, err := s.reportRepo.CountReportsByStatus(ctx, user.ID, domain.ReportActive)
	if err != nil {
		return nil, err
	}

	return &domain.Profile{
		User:                    u,
		BikesCount:              bikes,
		ActiveTheftReportsCount: active,
	}, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, user domain.CurrentUser, upd domain.ProfileUpdate) (*domain.User, error) {
	if upd == (domain.ProfileUpdate{}) {
		return nil, domain.NewValidationError("body", "no fields to update")
	}
	if err := s.validate.Struct(upd); err != nil {
		return nil, domain.ValidationIssues(err)
	}

	updated, err := s.userRepo.UpdateProfile(ctx, user.ID, upd)
	if err != nil {
		s.logger.Warn("Failed to update profile", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, err
	}

	s.logger.Info("Profile updated", map[string]interface{}{
		"user_id": user.ID,
	})
	return updated, nil
}

// ChangePassword sets a new password. The current one is only required when
// the account already has a password, which is not the case for accounts
// created through a federated login.
func (s *ProfileService) ChangePassword(ctx context.Context, user domain.CurrentUser, current, next string) error {
	if len(next) < domain.MinPasswordLength {
		return domain.NewValidationError("newPassword", "must be at least 6 characters")
	}

	u, err := s.userRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return err
	}

	if u.PasswordHash != "" {
		if current == "" {
			return domain.NewValidationError("currentPassword", "is required")
		}
		err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrInvalidCredentials
		}
		if err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.logger.Info("Password changed", map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}
