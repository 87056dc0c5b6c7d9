package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{err: ErrRoomNotFound, wantStatus: http.StatusNotFound, wantCode: "ROOM_NOT_FOUND"},
		{err: ErrUserNotFound, wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND"},
		{err: ErrMemberNotFound, wantStatus: http.StatusNotFound, wantCode: "MEMBER_NOT_FOUND"},
		{err: ErrQuestionNotFound, wantStatus: http.StatusNotFound, wantCode: "QUESTION_NOT_FOUND"},
		{err: ErrUserExists, wantStatus: http.StatusConflict, wantCode: "USER_ALREADY_EXISTS"},
		{err: ErrBanned, wantStatus: http.StatusForbidden, wantCode: "MEMBER_BANNED"},
		{err: ErrNotRoomOwner, wantStatus: http.StatusForbidden, wantCode: "NOT_ROOM_OWNER"},
		{err: ErrAccessDenied, wantStatus: http.StatusForbidden, wantCode: "ACCESS_DENIED"},
		{err: ErrInvalidInput, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{err: ErrUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: "STORAGE_UNAVAILABLE"},
		{err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_MatchesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: save room AbC123: connection reset", ErrUnavailable)

	httpErr := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "STORAGE_UNAVAILABLE", httpErr.Code)
}

func TestHTTPError_ToErrorResponse(t *testing.T) {
	httpErr := NewHTTPError(http.StatusForbidden, "access denied", "ACCESS_DENIED")

	resp := httpErr.ToErrorResponse()
	assert.Equal(t, "access denied", resp.Error)
	assert.Equal(t, "ACCESS_DENIED", resp.Code)
	assert.Equal(t, "access denied", httpErr.Error())
}
