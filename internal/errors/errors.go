package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRoomNotFound is returned when a room code does not resolve.
	ErrRoomNotFound = errors.New("room not found")
	// ErrUserNotFound is returned when a user email does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrMemberNotFound is returned when a member id is not in the room roster.
	ErrMemberNotFound = errors.New("member not found in room")
	// ErrQuestionNotFound is returned when a question index is out of range.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrBanned is returned when a banned email tries to enter a room.
	ErrBanned = errors.New("email is banned from this room")
	// ErrNotRoomOwner is returned when an owner-only action is attempted by someone else.
	ErrNotRoomOwner = errors.New("only the room owner may perform this action")
	// ErrAccessDenied is returned when a non-member reads a members-only view.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidInput is returned for payloads the core cannot act on.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable is returned when the storage layer fails transiently.
	ErrUnavailable = errors.New("storage unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are
// matched with errors.Is so services can annotate the cause.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return NewHTTPError(http.StatusNotFound, ErrRoomNotFound.Error(), "ROOM_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrMemberNotFound):
		return NewHTTPError(http.StatusNotFound, ErrMemberNotFound.Error(), "MEMBER_NOT_FOUND")
	case errors.Is(err, ErrQuestionNotFound):
		return NewHTTPError(http.StatusNotFound, ErrQuestionNotFound.Error(), "QUESTION_NOT_FOUND")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, ErrUserExists.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrBanned):
		return NewHTTPError(http.StatusForbidden, ErrBanned.Error(), "MEMBER_BANNED")
	case errors.Is(err, ErrNotRoomOwner):
		return NewHTTPError(http.StatusForbidden, ErrNotRoomOwner.Error(), "NOT_ROOM_OWNER")
	case errors.Is(err, ErrAccessDenied):
		return NewHTTPError(http.StatusForbidden, ErrAccessDenied.Error(), "ACCESS_DENIED")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidInput.Error(), "INVALID_INPUT")
	case errors.Is(err, ErrUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrUnavailable.Error(), "STORAGE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
