package ports

import "github.com/sm8ta/webike_theft_registry/internal/core/domain"

type TokenService interface {
	VerifyToken(token string) (*domain.TokenPayload, error)
}
