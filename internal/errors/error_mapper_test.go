package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorNil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}

func TestMapErrorPassesThroughAppError(t *testing.T) {
	appErr := NewAppError("bad percentile", MsgInvalidParameters, ErrCodeInvalidParameters, http.StatusBadRequest, nil)
	assert.Same(t, appErr, MapError(appErr))
}

func TestMapErrorPatterns(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "listing not found",
			err:        errors.New("listing not found: abc-123"),
			wantCode:   ErrCodeListingNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "mongo no documents",
			err:        errors.New("mongo: no documents in result"),
			wantCode:   ErrCodeListingNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown borough",
			err:        fmt.Errorf("unknown borough %q", "Atlantis"),
			wantCode:   ErrCodeUnknownBorough,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation message",
			err:        errors.New("percentile must be greater than 0 and at most 100"),
			wantCode:   ErrCodeInvalidParameters,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "database failure",
			err:        errors.New("database query failed: connection refused"),
			wantCode:   ErrCodeServiceUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "expired token",
			err:        errors.New("token is expired"),
			wantCode:   ErrCodeUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unmapped error",
			err:        errors.New("something odd"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			assert.Equal(t, tt.wantCode, mapped.Code)
			assert.Equal(t, tt.wantStatus, mapped.HTTPStatus)
			assert.ErrorIs(t, mapped, tt.err)
		})
	}
}
