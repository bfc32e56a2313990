package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

type AlertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func insertAlert(ctx context.Context, q dbtx, alert *domain.Alert) error {
	var (
		relType interface{}
		relID   interface{}
	)
	if alert.Related != nil {
		relType = string(alert.Related.Type)
		relID = alert.Related.ID
	}

	err := q.QueryRowContext(ctx,
		`INSERT INTO alerts (id, user_id, title, message, type, related_entity_type, related_entity_id, read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING read, created_at`,
		alert.ID,
		alert.UserID,
		alert.Title,
		alert.Message,
		alert.Type,
		relType,
		relID,
	).Scan(&alert.Read, &alert.CreatedAt)
	if err != nil {
		return mapPQError(err, domain.ErrUserNotFound)
	}
	return nil
}

func (r *AlertRepository) CreateAlert(ctx context.Context, alert *domain.Alert) (*domain.Alert, error) {
	if err := insertAlert(ctx, querier(ctx, r.db), alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *AlertRepository) GetAlertsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Alert, error) {
	query := `SELECT id, user_id, title, message, type, related_entity_type, related_entity_id, read, created_at
		FROM alerts WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := querier(ctx, r.db).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []*domain.Alert{}
	for rows.Next() {
		alert := &domain.Alert{}
		var (
			relType sql.NullString
			relID   uuid.NullUUID
		)
		err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.Title,
			&alert.Message,
			&alert.Type,
			&relType,
			&relID,
			&alert.Read,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if relType.Valid && relID.Valid {
			alert.Related = &domain.RelatedEntity{Type: domain.EntityType(relType.String), ID: relID.UUID}
		}
		alerts = append(alerts, alert)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return alerts, nil
}

// MarkAlertRead is idempotent: an already-read alert still counts as matched.
func (r *AlertRepository) MarkAlertRead(ctx context.Context, alertID, userID uuid.UUID) error {
	result, err := querier(ctx, r.db).ExecContext(ctx,
		`UPDATE alerts SET read = TRUE WHERE id = $1 AND user_id = $2`,
		alertID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark alert read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := querier(ctx, r.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM alerts WHERE user_id = $1 AND NOT read`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}
	return count, nil
}
