package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trip-journal/internal/config"
	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/utils"
)

func TestAuthService_ParseToken(t *testing.T) {
	cfg := config.App{
		TokenSignKey: "test-sign-key",
		TokenIssuer:  "trip-journal",
	}
	svc := NewAuthService(cfg, logger.Nop())

	t.Run("accepts a valid token and returns its subject", func(t *testing.T) {
		issued, err := utils.GenerateJWTToken(cfg.TokenIssuer, "auth0|user-1", time.Hour, cfg.TokenSignKey)
		require.NoError(t, err)

		token, err := svc.ParseToken(context.Background(), issued.SignedString)

		require.NoError(t, err)
		assert.Equal(t, "auth0|user-1", token.UserID)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		issued, err := utils.GenerateJWTToken(cfg.TokenIssuer, "auth0|user-1", time.Nanosecond, cfg.TokenSignKey)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)

		_, err = svc.ParseToken(context.Background(), issued.SignedString)

		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("rejects a token from another issuer", func(t *testing.T) {
		issued, err := utils.GenerateJWTToken("someone-else", "auth0|user-1", time.Hour, cfg.TokenSignKey)
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), issued.SignedString)

		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		issued, err := utils.GenerateJWTToken(cfg.TokenIssuer, "auth0|user-1", time.Hour, "wrong-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), issued.SignedString)

		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ParseToken(context.Background(), "not-a-token")

		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}
