package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/SscSPs/bizbooks_app/internal/core/services"
	"github.com/SscSPs/bizbooks_app/internal/platform/config"
	"github.com/SscSPs/bizbooks_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "bizbooks"}
	svc := services.NewTokenService(cfg)

	before := time.Now()
	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.User{UserID: "user-1"})

	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret", "bizbooks")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestGoogleOAuth_ValidateRequiresClientID(t *testing.T) {
	svc := services.NewGoogleOAuthHandlerService(&config.Config{})

	_, err := svc.ValidateGoogleIDToken(context.Background(), "token")

	assert.ErrorContains(t, err, "client ID is not configured")
}
