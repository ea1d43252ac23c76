package jwt

import (
	"errors"
	"fmt"
	"time"

	"portfolio/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// NewToken signs an HS256 session token for user valid for duration.
func NewToken(user models.User, duration time.Duration, secret string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UID:      user.ID.String(),
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the session it carries.
func ParseToken(tokenString, secret string) (*models.Session, error) {
	var c claims

	_, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	uid, err := uuid.Parse(c.UID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad uid", ErrInvalidToken)
	}

	return &models.Session{
		UserID:    uid,
		Username:  c.Username,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Unix(),
	}, nil
}
