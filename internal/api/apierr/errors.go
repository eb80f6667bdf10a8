package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arcadenight/leaderboard-go/internal/model"
	"github.com/arcadenight/leaderboard-go/internal/services/leaderboard"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeBlocked        = "BLOCKED"
	CodeNicknameTaken  = "NICKNAME_TAKEN"
	CodePhoneInUse     = "PHONE_IN_USE"
	CodePlayerNotFound = "PLAYER_NOT_FOUND"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, leaderboard.ErrBlocked):
		return &httpError{http.StatusForbidden, APIError{CodeBlocked, "This phone number is blocked."}}
	case errors.Is(err, model.ErrNicknameTaken):
		return &httpError{http.StatusBadRequest, APIError{CodeNicknameTaken, "Nickname is already taken."}}
	case errors.Is(err, model.ErrPhoneInUse):
		return &httpError{http.StatusBadRequest, APIError{CodePhoneInUse, "Phone number already used with a different nickname."}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	default:
		// Storage faults and anything unclassified: generic failure,
		// no detail leaks
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
