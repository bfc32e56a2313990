package services

import (
	"context"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AchievementService struct {
	badgeRepo       ports.BadgeRepository
	achievementRepo ports.AchievementRepository
	bikeRepo        ports.BikeRepository
	reportRepo      ports.ReportRepository
	logger          ports.LoggerPort
	validate        *validator.Validate
	cache           ports.CachePort
	cacheTTL        time.Duration
	counters        map[string]progressCounter
}

// progressCounter measures how far a user has gone with one action.
type progressCounter func(ctx context.Context, userID uuid.UUID, data map[string]interface{}) (int, error)

func NewAchievementService(
	badgeRepo ports.BadgeRepository,
	achievementRepo ports.AchievementRepository,
	bikeRepo ports.BikeRepository,
	reportRepo ports.ReportRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	cacheTTL time.Duration,
) *AchievementService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultBadgeCacheTTL
	}
	s := &AchievementService{
		badgeRepo:       badgeRepo,
		achievementRepo: achievementRepo,
		bikeRepo:        bikeRepo,
		reportRepo:      reportRepo,
		logger:          logger,
		validate:        validate,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
	s.counters = map[string]progressCounter{
		domain.ActionBikeRegistration: func(ctx context.Context, userID uuid.UUID, _ map[string]interface{}) (int, error) {
			return s.bikeRepo.CountBikesByUserID(ctx, userID)
		},
		domain.ActionBikeFound: func(ctx context.Context, userID uuid.UUID, _ map[string]interface{}) (int, error) {
			return s.reportRepo.CountReportsByStatus(ctx, userID, domain.ReportResolved)
		},
	}
	return s
}

// CheckAndAward evaluates every badge keyed on action against its own
// requirements and awards the ones the user now qualifies for. A badge is
// never awarded twice.
func (s *AchievementService) CheckAndAward(ctx context.Context, user domain.CurrentUser, action string, data map[string]interface{}) (*domain.AwardResult, error) {
	if action == "" {
		return nil, domain.NewValidationError("action", "is required")
	}
	if data == nil {
		data = map[string]interface{}{}
	}

	candidates, err := s.badgeRepo.GetBadgesByRequirementType(ctx, action)
	if err != nil {
		s.logger.Error("Failed to load candidate badges", map[string]interface{}{
			"error":  err.Error(),
			"action": action,
		})
		return nil, err
	}

	result := &domain.AwardResult{NewAchievements: []*domain.UserAchievement{}}
	if len(candidates) == 0 {
		return result, nil
	}

	held, err := s.achievementRepo.GetAchievedBadgeIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// Checked counts every candidate, held ones included.
	result.Checked = len(candidates)

	progress := -1
	for _, badge := range candidates {
		if held[badge.ID] {
			continue
		}

		if badge.Requirements.Count > 0 && progress < 0 {
			progress, err = s.progress(ctx, user.ID, action, data)
			if err != nil {
				return nil, err
			}
		}
		if !badge.Requirements.Satisfied(data, progress) {
			continue
		}

		achievement := &domain.UserAchievement{
			ID:      uuid.New(),
			UserID:  user.ID,
			BadgeID: badge.ID,
			Progress: domain.Progress{
				Action: action,
				Data:   data,
				Count:  max(progress, 0),
			},
		}
		alert := &domain.Alert{
			ID:      uuid.New(),
			UserID:  user.ID,
			Title:   domain.AchievementAlertTitle(badge),
			Message: domain.AchievementAlertMessage(badge),
			Type:    domain.AlertAchievement,
			Related: &domain.RelatedEntity{Type: domain.EntityBadge, ID: badge.ID},
		}

		awarded, err := s.achievementRepo.AwardBadge(ctx, achievement, alert)
		if err != nil {
			s.logger.Error("Failed to award badge", map[string]interface{}{
				"error":    err.Error(),
				"badge_id": badge.ID,
				"user_id":  user.ID,
			})
			return nil, err
		}
		if !awarded {
			continue
		}

		achievement.Badge = badge
		result.Awarded++
		result.NewAchievements = append(result.NewAchievements, achievement)

		s.logger.Info("Badge awarded", map[string]interface{}{
			"badge_id": badge.ID,
			"badge":    badge.Name,
			"user_id":  user.ID,
		})
	}

	return result, nil
}

func (s *AchievementService) progress(ctx context.Context, userID uuid.UUID, action string, data map[string]interface{}) (int, error) {
	if counter, ok := s.counters[action]; ok {
		return counter(ctx, userID, data)
	}
	switch v := data["count"].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, nil
}

func (s *AchievementService) ListAchievements(ctx context.Context, user domain.CurrentUser) ([]*domain.UserAchievement, error) {
	achievements, err := s.achievementRepo.GetAchievementsByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("Failed to list achievements", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, err
	}
	return achievements, nil
}

func (s *AchievementService) ListBadges(ctx context.Context) ([]*domain.Badge, error) {
	var cached []*domain.Badge
	if cacheGet(s.cache, badgesCacheKey, &cached) {
		return cached, nil
	}

	badges, err := s.badgeRepo.ListBadges(ctx)
	if err != nil {
		s.logger.Error("Failed to list badges", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	cacheSet(s.cache, s.logger, badgesCacheKey, badges, s.cacheTTL)
	return badges, nil
}

func (s *AchievementService) GetBadge(ctx context.Context, badgeID uuid.UUID) (*domain.Badge, error) {
	return s.badgeRepo.GetBadgeByID(ctx, badgeID)
}

func (s *AchievementService) CreateBadge(ctx context.Context, user domain.CurrentUser, badge *domain.Badge) (*domain.Badge, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	badge.ID = uuid.New()
	if err := s.validate.Struct(badge); err != nil {
		return nil, domain.ValidationIssues(err)
	}

	created, err := s.badgeRepo.CreateBadge(ctx, badge)
	if err != nil {
		s.logger.Error("Failed to create badge", map[string]interface{}{
			"error": err.Error(),
			"name":  badge.Name,
		})
		return nil, err
	}

	cacheDelete(s.cache, s.logger, badgesCacheKey)

	s.logger.Info("Badge created", map[string]interface{}{
		"badge_id": created.ID,
		"name":     created.Name,
		"admin_id": user.ID,
	})
	return created, nil
}

// SeedBadges inserts the default catalog when the badge table is empty and
// reports how many badges were inserted.
func (s *AchievementService) SeedBadges(ctx context.Context) (int, error) {
	count, err := s.badgeRepo.CountBadges(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Info("Badge catalog already seeded", map[string]interface{}{
			"badges": count,
		})
		return 0, nil
	}

	inserted := 0
	for _, badge := range domain.DefaultBadges() {
		badge.ID = uuid.New()
		if _, err := s.badgeRepo.CreateBadge(ctx, badge); err != nil {
			return inserted, err
		}
		inserted++
	}

	cacheDelete(s.cache, s.logger, badgesCacheKey)

	s.logger.Info("Badge catalog seeded", map[string]interface{}{
		"badges": inserted,
	})
	return inserted, nil
}
