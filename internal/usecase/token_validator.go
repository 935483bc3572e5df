package usecase

import (
	"venue-ops/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, string, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, claims.Role, nil
}
