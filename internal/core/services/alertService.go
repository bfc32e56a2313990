package services

import (
	"context"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AlertService struct {
	alertRepo ports.AlertRepository
	logger    ports.LoggerPort
	validate  *validator.Validate
}

func NewAlertService(alertRepo ports.AlertRepository, logger ports.LoggerPort, validate *validator.Validate) *AlertService {
	return &AlertService{
		alertRepo: alertRepo,
		logger:    logger,
		validate:  validate,
	}
}

func (s *AlertService) Create(ctx context.Context, userID uuid.UUID, title, message string, alertType domain.AlertType, related *domain.RelatedEntity) (*domain.Alert, error) {
	alert := &domain.Alert{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    alertType,
		Related: related,
	}
	if err := s.validate.Struct(alert); err != nil {
		return nil, domain.ValidationIssues(err)
	}

	created, err := s.alertRepo.CreateAlert(ctx, alert)
	if err != nil {
		s.logger.Error("Failed to create alert", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
			"type":    alertType,
		})
		return nil, err
	}
	return created, nil
}

// MarkRead flips the read flag of an owned alert. Marking twice is not an error.
func (s *AlertService) MarkRead(ctx context.Context, user domain.CurrentUser, alertID uuid.UUID) error {
	if err := s.alertRepo.MarkAlertRead(ctx, alertID, user.ID); err != nil {
		s.logger.Warn("Failed to mark alert read", map[string]interface{}{
			"error":    err.Error(),
			"alert_id": alertID,
			"user_id":  user.ID,
		})
		return err
	}
	return nil
}

// ListForUser returns the user's alerts newest first and the unread count.
func (s *AlertService) ListForUser(ctx context.Context, user domain.CurrentUser) ([]*domain.Alert, int, error) {
	alerts, err := s.alertRepo.GetAlertsByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("Failed to list alerts", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, 0, err
	}

	unread, err := s.alertRepo.CountUnread(ctx, user.ID)
	if err != nil {
		s.logger.Warn("Failed to count unread alerts", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		unread = 0
		for _, a := range alerts {
			if !a.Read {
				unread++
			}
		}
	}
	return alerts, unread, nil
}
