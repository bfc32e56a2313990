package ports

import (
	"context"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *domain.Alert) (*domain.Alert, error)
	GetAlertsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Alert, error)
	MarkAlertRead(ctx context.Context, alertID, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

type AlertService interface {
	Create(ctx context.Context, userID uuid.UUID, title, message string, alertType domain.AlertType, related *domain.RelatedEntity) (*domain.Alert, error)
	MarkRead(ctx context.Context, user domain.CurrentUser, alertID uuid.UUID) error
	ListForUser(ctx context.Context, user domain.CurrentUser) ([]*domain.Alert, int, error)
}
