package winja

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a failed API call. It carries the HTTP status and,
// when the server provided one, its message verbatim.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error: %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

// newAPIError decodes an error response body. The backend is inconsistent
// about where it puts the message, so both {"message": ...} and
// {"error": ...} shapes are accepted; anything else falls back to a bare
// status error.
func newAPIError(statusCode int, body []byte, requestID string) *APIError {
	apiErr := &APIError{StatusCode: statusCode, RequestID: requestID}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			apiErr.Message = envelope.Message
		} else if envelope.Error != "" {
			apiErr.Message = envelope.Error
		}
	}

	return apiErr
}

// IsUnauthorized reports whether err is an authorization failure. The
// backend does not distinguish a missing token from insufficient rights, so
// 401 and 403 are both treated as "not authorized".
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized ||
			apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}
