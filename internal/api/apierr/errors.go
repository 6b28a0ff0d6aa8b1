package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"batepapo/internal/model"
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
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInvalidMessageID    = "INVALID_MESSAGE_ID"
	CodeNameTaken           = "NAME_TAKEN"
	CodeParticipantNotFound = "PARTICIPANT_NOT_FOUND"
	CodeRecipientNotFound   = "RECIPIENT_NOT_FOUND"
	CodeMessageNotFound     = "MESSAGE_NOT_FOUND"
	CodeNotOwner            = "NOT_OWNER"
	CodeStoreError          = "STORE_ERROR"
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

// toHTTPError converts an error to an httpError.
// Unknown errors are store/infrastructure failures and map to 500.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidInput, verr.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrInvalidMessageID):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidMessageID, "Message id must be a 24-character hex string"}}
	case errors.Is(err, model.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "Participant name already taken"}}
	case errors.Is(err, model.ErrParticipantNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeParticipantNotFound, "Participant not found"}}
	case errors.Is(err, model.ErrRecipientNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRecipientNotFound, "Recipient not found"}}
	case errors.Is(err, model.ErrMessageNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMessageNotFound, "Message not found"}}
	case errors.Is(err, model.ErrNotMessageOwner):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotOwner, "Only the original sender may modify this message"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeStoreError, "Store unavailable"}}
	}
}

// NewInvalidRequestError creates a malformed-input error (422)
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidRequest, message}}
}

// NewStoreError creates an internal store error
func NewStoreError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeStoreError, "Store unavailable"}}
}
