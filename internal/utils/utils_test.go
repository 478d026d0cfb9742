package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("battery staple", hash))
	assert.False(t, CheckPasswordHash("", ""))

	_, err = HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "bizbooks")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "bizbooks")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT(token, "wrong", "bizbooks")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", -time.Minute, "")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestPosthogWrapper_NoopWithoutKey(t *testing.T) {
	var nilWrapper *PosthogClientWrapper
	assert.False(t, nilWrapper.IsInitialized())

	w := &PosthogClientWrapper{}
	assert.False(t, w.IsInitialized())
	w.Enqueue("user-1", "invoice_created", nil)
	w.Close()
}
