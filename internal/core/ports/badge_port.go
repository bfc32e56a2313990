package ports

import (
	"context"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

type BadgeRepository interface {
	ListBadges(ctx context.Context) ([]*domain.Badge, error)
	GetBadgeByID(ctx context.Context, badgeID uuid.UUID) (*domain.Badge, error)
	GetBadgesByRequirementType(ctx context.Context, action string) ([]*domain.Badge, error)
	CreateBadge(ctx context.Context, badge *domain.Badge) (*domain.Badge, error)
	CountBadges(ctx context.Context) (int, error)
}

type AchievementRepository interface {
	GetAchievementsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.UserAchievement, error)
	GetAchievedBadgeIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
	// AwardBadge stores the achievement and its alert in one transaction.
	// It reports false when the user already held the badge.
	AwardBadge(ctx context.Context, achievement *domain.UserAchievement, alert *domain.Alert) (bool, error)
}

type AchievementService interface {
	CheckAndAward(ctx context.Context, user domain.CurrentUser, action string, data map[string]interface{}) (*domain.AwardResult, error)
	ListAchievements(ctx context.Context, user domain.CurrentUser) ([]*domain.UserAchievement, error)
	ListBadges(ctx context.Context) ([]*domain.Badge, error)
	GetBadge(ctx context.Context, badgeID uuid.UUID) (*domain.Badge, error)
	CreateBadge(ctx context.Context, user domain.CurrentUser, badge *domain.Badge) (*domain.Badge, error)
	SeedBadges(ctx context.Context) (int, error)
}
