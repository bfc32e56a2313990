package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	FirebaseUID    *string   `json:"firebaseUid,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	FirstName      string    `json:"firstName,omitempty"`
	LastName       string    `json:"lastName,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ContactCard is the contact a public report falls back to when the reporter
// chose to use their profile details.
func (u *User) ContactCard() Contact {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		name = u.Username
	}
	return Contact{Name: name, Phone: u.Phone, Email: u.Email}
}

type ProfileUpdate struct {
	Username       *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	FirstName      *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName       *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	ProfilePicture *string `json:"profilePicture,omitempty" validate:"omitempty,url"`
}

type Profile struct {
	*User
	BikesCount              int `json:"bikesCount"`
	ActiveTheftReportsCount int `json:"activeTheftReportsCount"`
}

const MinPasswordLength = 6
