package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if goerrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	var upstream *UpstreamMediaError
	switch {
	case goerrors.Is(err, ErrQueryFailed):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgQueryFailed,
			Code:             ErrCodeQueryFailed,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	case goerrors.Is(err, ErrInvalidParameters):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidParameters,
			Code:             ErrCodeInvalidParameters,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case goerrors.Is(err, ErrUpstreamAuth):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgUpstreamAuth,
			Code:             ErrCodeUpstreamAuth,
			HTTPStatus:       http.StatusBadGateway,
			OriginalError:    err,
		}
	case goerrors.As(err, &upstream):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      fmt.Sprintf("%s: %d", MsgUpstreamMedia, upstream.Status),
			Code:             ErrCodeUpstreamMedia,
			HTTPStatus:       http.StatusBadGateway,
			OriginalError:    err,
		}
	case goerrors.Is(err, ErrMediaNotFound):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgMediaNotFound,
			Code:             ErrCodeMediaNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
