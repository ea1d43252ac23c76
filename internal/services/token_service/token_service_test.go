package services

import (
	"testing"
	"time"

	"portfolio/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{
	ID:       uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
	Username: "admin",
	Email:    "test@example.com",
	Role:     models.RoleAdmin,
}

func TestGenerateToken_Success(t *testing.T) {
	service := NewTokenService("secret", time.Hour)

	token, err := service.GenerateToken(testUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	session, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, session.UserID)
	assert.Equal(t, testUser.Username, session.Username)
	assert.True(t, session.IsAdmin())
}

func TestParseToken_InvalidToken(t *testing.T) {
	service := NewTokenService("secret", time.Hour)

	_, err := service.ParseToken("invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := NewTokenService("one", time.Hour).GenerateToken(testUser)
	require.NoError(t, err)

	_, err = NewTokenService("two", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	service := NewTokenService("secret", -time.Second)

	token, err := service.GenerateToken(testUser)
	require.NoError(t, err)

	_, err = service.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
