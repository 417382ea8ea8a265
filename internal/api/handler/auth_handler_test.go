package handler

import (
	"credit-approval/internal/api/handler/dto"
	"credit-approval/internal/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBearerToken(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "test-jwt-secret-key", TokenTTL: 30 * time.Minute}
	fixedNow := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("successfully generates token", func(t *testing.T) {
		h := NewAuthHandler(cfg, logger)
		h.now = func() time.Time { return fixedNow }

		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":"analyst"}`))
		rec := httptest.NewRecorder()

		h.GenerateBearerToken(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TokenResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, fixedNow.Add(30*time.Minute).Unix(), resp.ExpiresAt)
		require.True(t, strings.HasPrefix(resp.Token, "Bearer "))

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(strings.TrimPrefix(resp.Token, "Bearer "), claims,
			func(*jwt.Token) (interface{}, error) { return []byte(cfg.JWTSecret), nil },
			jwt.WithTimeFunc(func() time.Time { return fixedNow }),
		)
		require.NoError(t, err)
		assert.Equal(t, "analyst", claims.Subject)
	})

	t.Run("missing username", func(t *testing.T) {
		h := NewAuthHandler(cfg, logger)

		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":" "}`))
		rec := httptest.NewRecorder()

		h.GenerateBearerToken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "username", resp.Error.Field)
	})

	t.Run("invalid body", func(t *testing.T) {
		h := NewAuthHandler(cfg, logger)

		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		h.GenerateBearerToken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("secret not configured", func(t *testing.T) {
		h := NewAuthHandler(config.AuthConfig{}, logger)

		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":"analyst"}`))
		rec := httptest.NewRecorder()

		h.GenerateBearerToken(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
