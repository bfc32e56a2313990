package domain

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	Admin   UserRole = "admin"
	AppUser UserRole = "appuser"
)

type TokenPayload struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Username string
	Role     UserRole
}

// CurrentUser is the authenticated caller handed to every core operation.
type CurrentUser struct {
	ID       uuid.UUID
	Username string
	Role     UserRole
}

func (u CurrentUser) IsAdmin() bool {
	return u.Role == Admin
}

func (p *TokenPayload) CurrentUser() CurrentUser {
	return CurrentUser{ID: p.UserID, Username: p.Username, Role: p.Role}
}
