package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertNotification AlertType = "notification"
	AlertMatch        AlertType = "match"
	AlertUpdate       AlertType = "update"
	AlertAchievement  AlertType = "achievement"
)

type EntityType string

const (
	EntityBike   EntityType = "bike"
	EntityReport EntityType = "report"
	EntityBadge  EntityType = "badge"
	EntityOther  EntityType = "other"
)

type RelatedEntity struct {
	Type EntityType `json:"type"`
	ID   uuid.UUID  `json:"id"`
}

type Alert struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	Title     string         `json:"title" validate:"required,max=255"`
	Message   string         `json:"message" validate:"required"`
	Type      AlertType      `json:"type" validate:"required,oneof=notification match update achievement"`
	Related   *RelatedEntity `json:"relatedEntity,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"createdAt"`
}
