package errors

import (
	"net/http"
	"strings"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	technicalMessage := err.Error()

	// Map specific error patterns to user-friendly errors
	switch {
	case strings.Contains(technicalMessage, "listing not found") || strings.Contains(technicalMessage, "no documents in result"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgListingNotFound,
			Code:             ErrCodeListingNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "unknown borough"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgUnknownBorough,
			Code:             ErrCodeUnknownBorough,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "must be") || strings.Contains(technicalMessage, "must not"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidParameters,
			Code:             ErrCodeInvalidParameters,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "database query failed") || strings.Contains(technicalMessage, "server selection error"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgServiceUnavailable,
			Code:             ErrCodeServiceUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "invalid token") || strings.Contains(technicalMessage, "token is expired"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgUnauthorized,
			Code:             ErrCodeUnauthorized,
			HTTPStatus:       http.StatusUnauthorized,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             "INTERNAL_ERROR",
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
