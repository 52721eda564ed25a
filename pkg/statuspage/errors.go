package statuspage

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a failed Statuspage API response.
type ErrorKind int

// Error kinds returned by the Statuspage API.
const (
	ErrorKindBadRequest ErrorKind = iota + 1
	ErrorKindAuthentication
	ErrorKindForbidden
	ErrorKindNotFound
	ErrorKindUnprocessableEntity
	ErrorKindRateLimit
	// ErrorKindConflict and ErrorKindMethodNotAllowed are part of the public
	// taxonomy but no status code maps to them.
	ErrorKindConflict
	ErrorKindMethodNotAllowed
)

// String returns the error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindBadRequest:
		return "BadRequestError"
	case ErrorKindAuthentication:
		return "AuthenticationError"
	case ErrorKindForbidden:
		return "ForbiddenError"
	case ErrorKindNotFound:
		return "NotFoundError"
	case ErrorKindUnprocessableEntity:
		return "UnprocessableEntityError"
	case ErrorKindRateLimit:
		return "RateLimitError"
	case ErrorKindConflict:
		return "ConflictError"
	case ErrorKindMethodNotAllowed:
		return "MethodNotAllowedError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// StatusRateLimitedLegacy is the non-standard status Statuspage has used for rate limiting.
const StatusRateLimitedLegacy = 420

// APIError represents an error response from the Statuspage API.
type APIError struct {
	Kind       ErrorKind `json:"kind"        yaml:"kind"`
	StatusCode int       `json:"status_code" yaml:"status_code"`
	Message    string    `json:"error"       yaml:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Kind, e.Message, e.StatusCode)
}

// Is reports whether target is a kind sentinel (an APIError carrying only a
// Kind) of the same kind as e.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}

	if t.StatusCode != 0 || t.Message != "" {
		return t == e
	}

	return t.Kind == e.Kind
}

// Kind sentinels for use with errors.Is.
var (
	ErrBadRequest          = &APIError{Kind: ErrorKindBadRequest}
	ErrUnauthorized        = &APIError{Kind: ErrorKindAuthentication}
	ErrForbidden           = &APIError{Kind: ErrorKindForbidden}
	ErrNotFound            = &APIError{Kind: ErrorKindNotFound}
	ErrUnprocessableEntity = &APIError{Kind: ErrorKindUnprocessableEntity}
	ErrRateLimited         = &APIError{Kind: ErrorKindRateLimit}
	ErrConflict            = &APIError{Kind: ErrorKindConflict}
	ErrMethodNotAllowed    = &APIError{Kind: ErrorKindMethodNotAllowed}
)

// Static errors for configuration problems.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
)

// KindForStatus maps an HTTP status code to an error kind. Codes without an
// explicit mapping fall back to ErrorKindAuthentication.
func KindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrorKindBadRequest
	case http.StatusUnauthorized:
		return ErrorKindAuthentication
	case http.StatusForbidden:
		return ErrorKindForbidden
	case http.StatusNotFound:
		return ErrorKindNotFound
	case http.StatusUnprocessableEntity:
		return ErrorKindUnprocessableEntity
	case StatusRateLimitedLegacy, http.StatusTooManyRequests:
		return ErrorKindRateLimit
	}

	return ErrorKindAuthentication
}

// FormatError builds the APIError for a failed response from its status code
// and raw body.
func FormatError(statusCode int, body []byte) *APIError {
	return &APIError{
		Kind:       KindForStatus(statusCode),
		StatusCode: statusCode,
		Message:    ParseErrorMessage(statusCode, body),
	}
}

// ParseErrorMessage extracts the "error" field of an error body. The field is
// usually a string; a list of strings is joined with "; ". Bodies without the
// field yield the trimmed body text, or the status text when the body is empty.
func ParseErrorMessage(statusCode int, body []byte) string {
	var errResp struct {
		Error json.RawMessage `json:"error"`
	}

	err := json.Unmarshal(body, &errResp)
	if err == nil && len(errResp.Error) > 0 {
		var message string

		if json.Unmarshal(errResp.Error, &message) == nil {
			return message
		}

		var messages []string

		if json.Unmarshal(errResp.Error, &messages) == nil {
			return strings.Join(messages, "; ")
		}

		return string(errResp.Error)
	}

	text := strings.TrimSpace(string(body))
	if text != "" {
		return text
	}

	return http.StatusText(statusCode)
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// IsBadRequest checks if the error is a bad request error.
func IsBadRequest(err error) bool {
	return hasKind(err, ErrorKindBadRequest)
}

// IsUnauthorized checks if the error is an authentication error. Unmapped
// status codes are reported as authentication errors too; inspect
// APIError.StatusCode to tell them apart.
func IsUnauthorized(err error) bool {
	return hasKind(err, ErrorKindAuthentication)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasKind(err, ErrorKindForbidden)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasKind(err, ErrorKindNotFound)
}

// IsUnprocessable checks if the error is an unprocessable entity error.
func IsUnprocessable(err error) bool {
	return hasKind(err, ErrorKindUnprocessableEntity)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return hasKind(err, ErrorKindRateLimit)
}
