package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"nychousing-insights/internal/auth"
	apperrors "nychousing-insights/internal/errors"
	"nychousing-insights/internal/models"
	"nychousing-insights/pkg/config"
)

// ViewerService exchanges the shared dashboard password for a viewer token.
type ViewerService struct {
	cfg *config.Config
}

func NewViewerService(cfg *config.Config) *ViewerService {
	return &ViewerService{cfg: cfg}
}

// Login verifies the dashboard password against the configured bcrypt hash
// and issues a short-lived viewer token.
func (s *ViewerService) Login(ctx context.Context, password string) (*models.TokenResponse, error) {
	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperrors.NewAppError(
			"dashboard password mismatch",
			apperrors.MsgInvalidCredentials,
			apperrors.ErrCodeInvalidCredentials,
			http.StatusUnauthorized,
			err,
		)
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute
	token, err := auth.GenerateViewerToken(s.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		Token:     token,
		ExpiresIn: fmt.Sprintf("%d", int64(ttl/time.Second)),
		TokenType: "Bearer",
	}, nil
}
