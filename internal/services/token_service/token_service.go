package services

import (
	"errors"
	"fmt"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/jwt"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the signed session tokens carried in
// the cookie session or the Authorization header.
type TokenService struct {
	secret string
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

func (s *TokenService) GenerateToken(user models.User) (string, error) {
	const op = "token_service.GenerateToken"

	token, err := jwt.NewToken(user, s.ttl, s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

// ParseToken returns the session a token carries. Every failure maps to ErrInvalidToken.
func (s *TokenService) ParseToken(token string) (*models.Session, error) {
	session, err := jwt.ParseToken(token, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return session, nil
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
