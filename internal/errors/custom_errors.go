package errors

import (
	goerrors "errors"
	"fmt"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodeQueryFailed       = "QUERY_FAILED"
	ErrCodeInvalidParameters = "INVALID_PARAMETERS"
	ErrCodeUpstreamMedia     = "UPSTREAM_MEDIA_ERROR"
	ErrCodeUpstreamAuth      = "UPSTREAM_AUTH_FAILED"
	ErrCodeMediaNotFound     = "MEDIA_NOT_FOUND"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// Sentinels matched by MapError through errors.Is.
var (
	ErrQueryFailed       = goerrors.New("listing query failed")
	ErrInvalidParameters = goerrors.New("invalid parameters")
	ErrUpstreamAuth      = goerrors.New("media catalog rejected credentials")
	ErrMediaNotFound     = goerrors.New("no media at requested index")
)

// UpstreamMediaError is a non-success status from the media catalog.
type UpstreamMediaError struct {
	Status int
}

func (e *UpstreamMediaError) Error() string {
	return fmt.Sprintf("media catalog returned status %d", e.Status)
}
