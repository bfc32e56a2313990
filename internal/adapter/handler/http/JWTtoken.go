package http

import (
	"errors"
	"fmt"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTTokenService struct {
	secretKey []byte
	logger    ports.LoggerPort
}

func NewJWTTokenService(secretKey string, logger ports.LoggerPort) *JWTTokenService {
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		logger:    logger,
	}
}

// VerifyToken checks an HS256 token issued by the auth service and extracts
// the caller. username is optional.
func (j *JWTTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		j.logger.Warn("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims", domain.ErrUnauthorized)
	}

	id, err := uuidClaim(claims, "id")
	if err != nil {
		return nil, err
	}
	userID, err := uuidClaim(claims, "user_id")
	if err != nil {
		return nil, err
	}

	roleClaimed, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing role", domain.ErrUnauthorized)
	}
	role := domain.UserRole(roleClaimed)
	if role != domain.Admin && role != domain.AppUser {
		j.logger.Warn("Invalid role in token", map[string]interface{}{
			"role":   roleClaimed,
			"method": "VerifyToken",
		})
		return nil, fmt.Errorf("%w: invalid role", domain.ErrUnauthorized)
	}

	username, _ := claims["username"].(string)

	return &domain.TokenPayload{
		ID:       id,
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}

// NewToken signs a token carrying the claims VerifyToken expects.
func (j *JWTTokenService) NewToken(payload domain.TokenPayload, claims jwt.MapClaims) (string, error) {
	if claims == nil {
		claims = jwt.MapClaims{}
	}
	claims["id"] = payload.ID.String()
	claims["user_id"] = payload.UserID.String()
	claims["role"] = string(payload.Role)
	if payload.Username != "" {
		claims["username"] = payload.Username
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
}

func uuidClaim(claims jwt.MapClaims, name string) (uuid.UUID, error) {
	raw, ok := claims[name].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: missing %s claim", domain.ErrUnauthorized, name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Join(domain.ErrUnauthorized, fmt.Errorf("invalid %s claim: %w", name, err))
	}
	return id, nil
}
