package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"nychousing-insights/internal/auth"
	apperrors "nychousing-insights/internal/errors"
	"nychousing-insights/pkg/config"
)

func newTestViewerService(t *testing.T, password string) *ViewerService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth.Enabled = true
	cfg.Auth.PasswordHash = string(hash)
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLMinutes = 30
	return NewViewerService(cfg)
}

func TestLoginIssuesViewerToken(t *testing.T) {
	svc := newTestViewerService(t, "open sesame")

	resp, err := svc.Login(context.Background(), "open sesame")
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "1800", resp.ExpiresIn)

	claims, err := auth.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleViewer, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestViewerService(t, "open sesame")

	_, err := svc.Login(context.Background(), "wrong")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidCredentials, appErr.Code)
	assert.Equal(t, 401, appErr.HTTPStatus)
}
