package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportActive   ReportStatus = "active"
	ReportResolved ReportStatus = "resolved"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type TheftReport struct {
	ID                uuid.UUID    `json:"id"`
	UserID            uuid.UUID    `json:"userId"`
	BikeID            uuid.UUID    `json:"bikeId" validate:"required"`
	TheftDate         time.Time    `json:"theftDate" validate:"required"`
	TheftLocation     string       `json:"theftLocation" validate:"required,max=255"`
	TheftDetails      string       `json:"theftDetails,omitempty" validate:"max=4000"`
	Latitude          *float64     `json:"latitude,omitempty"`
	Longitude         *float64     `json:"longitude,omitempty"`
	PoliceReported    bool         `json:"policeReported"`
	PoliceStation     string       `json:"policeStation,omitempty" validate:"max=255"`
	PoliceFileNumber  string       `json:"policeFileNumber,omitempty" validate:"max=100"`
	UseProfileContact bool         `json:"useProfileContact"`
	Contact           Contact      `json:"contact"`
	Visibility        Visibility   `json:"visibility" validate:"required,oneof=public private"`
	Status            ReportStatus `json:"status"`
	ResolvedAt        *time.Time   `json:"resolvedAt,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	Bike              *Bike        `json:"bike,omitempty"`
}

type Contact struct {
	Name  string `json:"name,omitempty" validate:"max=255"`
	Phone string `json:"phone,omitempty" validate:"max=50"`
	Email string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

func (c Contact) Empty() bool {
	return c.Name == "" && c.Phone == "" && c.Email == ""
}

// ReportDraft is the raw filing input. Coordinates stay textual until
// ParseCoordinates has checked them.
type ReportDraft struct {
	BikeID            uuid.UUID
	TheftDate         time.Time
	TheftLocation     string
	TheftDetails      string
	Latitude          string
	Longitude         string
	PoliceReported    bool
	PoliceStation     string
	PoliceFileNumber  string
	UseProfileContact bool
	Contact           Contact
	Visibility        Visibility
}
