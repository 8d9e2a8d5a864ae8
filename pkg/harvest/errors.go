package harvest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrRequestFailed is the sentinel wrapped by every RequestFailedError.
var ErrRequestFailed = errors.New("API request failed")

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
)

// RequestFailedError is returned when Harvest answers with a non-2xx status.
type RequestFailedError struct {
	StatusCode int    `json:"status"      yaml:"status"`
	StatusText string `json:"status_text" yaml:"status_text"`
	Body       []byte `json:"-"           yaml:"-"`
}

// Error implements the error interface.
func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrRequestFailed, e.StatusCode, e.StatusText)
}

// Unwrap allows errors.Is(err, ErrRequestFailed).
func (e *RequestFailedError) Unwrap() error {
	return ErrRequestFailed
}

// ErrorMessages extracts the "message" and "errors[].message" fields Harvest
// puts in error bodies. It returns nil when the body is not in that shape.
func (e *RequestFailedError) ErrorMessages() []string {
	body, err := ParseErrorBody(e.Body)
	if err != nil {
		return nil
	}

	var messages []string
	if body.Message != "" {
		messages = append(messages, body.Message)
	}

	for _, item := range body.Errors {
		if item.Message != "" {
			messages = append(messages, item.Message)
		}
	}

	return messages
}

// ErrorBody is the JSON body Harvest returns alongside 4xx responses.
type ErrorBody struct {
	Message string      `json:"message" yaml:"message"`
	Errors  []ErrorItem `json:"errors"  yaml:"errors"`
}

// ErrorItem is one entry of ErrorBody.Errors.
type ErrorItem struct {
	Message string `json:"message" yaml:"message"`
	Field   string `json:"field"   yaml:"field"`
}

// IsNotFound reports whether err is a 404 RequestFailedError.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is a 401 RequestFailedError.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden reports whether err is a 403 RequestFailedError.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsUnprocessable reports whether err is a 422 RequestFailedError.
func IsUnprocessable(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, status int) bool {
	reqErr := &RequestFailedError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == status
	}

	return false
}

// ParseErrorBody parses a Harvest error response body.
func ParseErrorBody(data []byte) (*ErrorBody, error) {
	var body ErrorBody

	err := json.Unmarshal(data, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error body: %w", err)
	}

	return &body, nil
}
