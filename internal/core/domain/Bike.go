package domain

import (
	"time"

	"github.com/google/uuid"
)

type Bike struct {
	ID             uuid.UUID    `json:"id"`
	UserID         uuid.UUID    `json:"userId"`
	Brand          string       `json:"brand" validate:"required,max=100"`
	Model          string       `json:"model" validate:"required,max=100"`
	Type           BikeType     `json:"type" validate:"required,biketype"`
	Year           int          `json:"year" validate:"required,bikeyear"`
	Color          string       `json:"color" validate:"required,max=50"`
	FrameSize      string       `json:"frameSize,omitempty" validate:"max=20"`
	SerialNumber   string       `json:"serialNumber" validate:"required,min=4,max=64"`
	AdditionalInfo string       `json:"additionalInfo,omitempty" validate:"max=2000"`
	ImageURL       string       `json:"imageUrl,omitempty"`
	Images         []*BikeImage `json:"images,omitempty"`
	Status         BikeStatus   `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// BikeUpdate carries the mutable attributes of a bike. Nil fields are left untouched.
type BikeUpdate struct {
	Brand          *string   `json:"brand,omitempty" validate:"omitempty,min=1,max=100"`
	Model          *string   `json:"model,omitempty" validate:"omitempty,min=1,max=100"`
	Type           *BikeType `json:"type,omitempty" validate:"omitempty,biketype"`
	Year           *int      `json:"year,omitempty" validate:"omitempty,bikeyear"`
	Color          *string   `json:"color,omitempty" validate:"omitempty,min=1,max=50"`
	FrameSize      *string   `json:"frameSize,omitempty" validate:"omitempty,max=20"`
	SerialNumber   *string   `json:"serialNumber,omitempty" validate:"omitempty,min=4,max=64"`
	AdditionalInfo *string   `json:"additionalInfo,omitempty" validate:"omitempty,max=2000"`
}

func (u BikeUpdate) Empty() bool {
	return u.Brand == nil && u.Model == nil && u.Type == nil && u.Year == nil &&
		u.Color == nil && u.FrameSize == nil && u.SerialNumber == nil && u.AdditionalInfo == nil
}

type BikeImage struct {
	ID        uuid.UUID `json:"id"`
	BikeID    uuid.UUID `json:"bikeId"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

type BikeType string

const (
	Road     BikeType = "road"
	Mountain BikeType = "mountain"
	Hybrid   BikeType = "hybrid"
	City     BikeType = "city"
	Electric BikeType = "electric"
	BMX      BikeType = "bmx"
	Kids     BikeType = "kids"
	Other    BikeType = "other"
)

func (t BikeType) Valid() bool {
	switch t {
	case Road, Mountain, Hybrid, City, Electric, BMX, Kids, Other:
		return true
	}
	return false
}

type BikeStatus string

const (
	BikeRegistered BikeStatus = "registered"
	BikeStolen     BikeStatus = "stolen"
	BikeFound      BikeStatus = "found"
)

const (
	MinBikeYear     = 1970
	MaxImagesPerAdd = 10
)

// MaxBikeYear is the newest model year accepted at the given moment.
func MaxBikeYear(now time.Time) int {
	return now.Year()
}
