package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

const badgeColumns = `id, name, description, image_url, category, level, requirements, created_at`

func scanBadge(row rowScanner) (*domain.Badge, error) {
	badge := &domain.Badge{}
	var requirements []byte
	err := row.Scan(
		&badge.ID,
		&badge.Name,
		&badge.Description,
		&badge.ImageURL,
		&badge.Category,
		&badge.Level,
		&requirements,
		&badge.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(requirements, &badge.Requirements); err != nil {
		return nil, fmt.Errorf("badge %s has malformed requirements: %w", badge.ID, err)
	}
	return badge, nil
}

type BadgeRepository struct {
	db *sql.DB
}

func NewBadgeRepository(db *sql.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

func (r *BadgeRepository) queryBadges(ctx context.Context, query string, args ...interface{}) ([]*domain.Badge, error) {
	rows, err := querier(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	badges := []*domain.Badge{}
	for rows.Next() {
		badge, err := scanBadge(rows)
		if err != nil {
			return nil, err
		}
		badges = append(badges, badge)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *BadgeRepository) ListBadges(ctx context.Context) ([]*domain.Badge, error) {
	return r.queryBadges(ctx, `SELECT `+badgeColumns+`
		FROM badges
		ORDER BY level DESC, category DESC, name`)
}

func (r *BadgeRepository) GetBadgesByRequirementType(ctx context.Context, action string) ([]*domain.Badge, error) {
	return r.queryBadges(ctx, `SELECT `+badgeColumns+`
		FROM badges
		WHERE requirements->>'type' = $1
		ORDER BY level, name`, action)
}

func (r *BadgeRepository) GetBadgeByID(ctx context.Context, badgeID uuid.UUID) (*domain.Badge, error) {
	badge, err := scanBadge(querier(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+badgeColumns+` FROM badges WHERE id = $1`, badgeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBadgeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get badge: %w", err)
	}
	return badge, nil
}

func (r *BadgeRepository) CreateBadge(ctx context.Context, badge *domain.Badge) (*domain.Badge, error) {
	requirements, err := json.Marshal(badge.Requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to encode requirements: %w", err)
	}

	err = querier(ctx, r.db).QueryRowContext(ctx,
		`INSERT INTO badges (id, name, description, image_url, category, level, requirements)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		badge.ID,
		badge.Name,
		badge.Description,
		badge.ImageURL,
		badge.Category,
		badge.Level,
		requirements,
	).Scan(&badge.CreatedAt)
	if err != nil {
		return nil, mapPQError(err, domain.ErrBadgeNotFound)
	}
	return badge, nil
}

func (r *BadgeRepository) CountBadges(ctx context.Context) (int, error) {
	var count int
	if err := querier(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM badges`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count badges: %w", err)
	}
	return count, nil
}

type AchievementRepository struct {
	db *sql.DB
}

func NewAchievementRepository(db *sql.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func (r *AchievementRepository) GetAchievementsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.UserAchievement, error) {
	query := `SELECT a.id, a.user_id, a.badge_id, a.completed_at, a.progress,
			b.id, b.name, b.description, b.image_url, b.category, b.level, b.requirements, b.created_at
		FROM user_achievements a
		JOIN badges b ON b.id = a.badge_id
		WHERE a.user_id = $1
		ORDER BY a.completed_at DESC`

	rows, err := querier(ctx, r.db).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []*domain.UserAchievement{}
	for rows.Next() {
		a := &domain.UserAchievement{Badge: &domain.Badge{}}
		var progress, requirements []byte
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.BadgeID,
			&a.CompletedAt,
			&progress,
			&a.Badge.ID,
			&a.Badge.Name,
			&a.Badge.Description,
			&a.Badge.ImageURL,
			&a.Badge.Category,
			&a.Badge.Level,
			&requirements,
			&a.Badge.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(progress) > 0 {
			if err := json.Unmarshal(progress, &a.Progress); err != nil {
				return nil, fmt.Errorf("achievement %s has malformed progress: %w", a.ID, err)
			}
		}
		if err := json.Unmarshal(requirements, &a.Badge.Requirements); err != nil {
			return nil, fmt.Errorf("badge %s has malformed requirements: %w", a.Badge.ID, err)
		}
		achievements = append(achievements, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *AchievementRepository) GetAchievedBadgeIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := querier(ctx, r.db).QueryContext(ctx,
		`SELECT badge_id FROM user_achievements WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	held := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		held[id] = true
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return held, nil
}

func (r *AchievementRepository) AwardBadge(ctx context.Context, achievement *domain.UserAchievement, alert *domain.Alert) (bool, error) {
	progress, err := json.Marshal(achievement.Progress)
	if err != nil {
		return false, fmt.Errorf("failed to encode progress: %w", err)
	}

	awarded := false
	err = withinTransaction(ctx, r.db, nil, func(ctx context.Context) error {
		q := querier(ctx, r.db)

		err := q.QueryRowContext(ctx,
			`INSERT INTO user_achievements (id, user_id, badge_id, progress)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, badge_id) DO NOTHING
			RETURNING completed_at`,
			achievement.ID,
			achievement.UserID,
			achievement.BadgeID,
			progress,
		).Scan(&achievement.CompletedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return mapPQError(err, domain.ErrBadgeNotFound)
		}

		if err := insertAlert(ctx, q, alert); err != nil {
			return err
		}
		awarded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return awarded, nil
}
