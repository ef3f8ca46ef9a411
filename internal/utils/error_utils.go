package utils

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/pkg/logger"
)

// LogAndMapError logs technical details and returns a user-friendly AppError.
func LogAndMapError(err error, operation string, params ...interface{}) *errors.AppError {
	appErr := errors.MapError(err)
	if appErr == nil {
		return nil
	}

	logDetails := map[string]interface{}{}
	for i := 0; i < len(params); i += 2 {
		if i+1 < len(params) {
			logDetails[fmt.Sprintf("%v", params[i])] = params[i+1]
		}
	}

	logger.GlobalLogger.Errorf("operation=%s code=%s %s technical_error=%s",
		operation, appErr.Code, formatDetails(logDetails), appErr.TechnicalMessage)
	return appErr
}

func formatDetails(details map[string]interface{}) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, details[k]))
	}
	return strings.Join(parts, " ")
}

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}

// IsRetryableError determines if an error is transient and worth retrying.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var appErr *errors.AppError
	if goerrors.As(err, &appErr) {
		return appErr.HTTPStatus == http.StatusServiceUnavailable ||
			strings.Contains(appErr.TechnicalMessage, "timeout") ||
			strings.Contains(appErr.TechnicalMessage, "connection")
	}
	return strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "connection")
}
