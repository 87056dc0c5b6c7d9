package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quizroom/internal/errors"
	"quizroom/internal/service"
)

// RoomHandler handles room lifecycle endpoints.
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoomRequest represents a room creation request. The owner's email
// comes from the bearer token, not the body.
type CreateRoomRequest struct {
	Name     string `json:"name" validate:"required"`
	UserName string `json:"userName"`
}

// JoinRoomRequest represents a join request for a registered user.
type JoinRoomRequest struct {
	RoomCode string `json:"roomCode" validate:"required"`
	Name     string `json:"name"`
}

// JoinGuestRequest represents an unauthenticated guest join.
type JoinGuestRequest struct {
	RoomCode string `json:"roomCode" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// GetRoomRequest represents a room detail request.
type GetRoomRequest struct {
	RoomCode string `json:"roomCode" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// RoomCodeRequest carries just a room code.
type RoomCodeRequest struct {
	RoomCode string `json:"roomCode" validate:"required"`
}

// MemberEmailRequest targets a member within a room by email.
type MemberEmailRequest struct {
	RoomCode string `json:"roomCode" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// CreateRoom godoc
// @Summary Create a room with a fresh shareable code
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoomRequest true "Room data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /createRoom [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.CreateRoom(c.Request().Context(), req.Name, req.UserName, requesterEmail(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "room created successfully",
		"room": map[string]interface{}{
			"name":  room.Name,
			"owner": room.Owner,
			"code":  room.Code,
		},
	})
}

// JoinRoom godoc
// @Summary Join a room (idempotent per email)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JoinRoomRequest true "Join data"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /joinRoom [post]
func (h *RoomHandler) JoinRoom(c echo.Context) error {
	var req JoinRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.JoinRoom(c.Request().Context(), req.RoomCode, req.Name, requesterEmail(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "room joined successfully",
		"room":    roomNamesSummary(room),
	})
}

// JoinGuest godoc
// @Summary Join a room as a disposable guest
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body JoinGuestRequest true "Guest join data"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /joinGuest [post]
func (h *RoomHandler) JoinGuest(c echo.Context) error {
	var req JoinGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, guest, err := h.roomService.JoinAsGuest(c.Request().Context(), req.RoomCode, req.Name)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	summary := roomNamesSummary(room)
	summary["guest"] = map[string]string{"id": guest.ID, "name": guest.Name}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "room found",
		"room":    summary,
	})
}

// GetRoom godoc
// @Summary Room detail for a member
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body GetRoomRequest true "Room lookup"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /room [post]
func (h *RoomHandler) GetRoom(c echo.Context) error {
	var req GetRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.GetRoom(c.Request().Context(), req.RoomCode, req.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "room found",
		"room": map[string]interface{}{
			"name":        room.Name,
			"owner":       room.Owner,
			"members":     room.MemberNames(),
			"questions":   room.Questions,
			"code":        room.Code,
			"gameStarted": room.GameStarted,
		},
	})
}

// DeleteRoom godoc
// @Summary Delete a room (owner only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RoomCodeRequest true "Room code"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /deleteRoom [post]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	var req RoomCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.roomService.DeleteRoom(c.Request().Context(), req.RoomCode, requesterEmail(c)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "room deleted successfully",
	})
}

// BanMember godoc
// @Summary Ban an email from a room (owner only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MemberEmailRequest true "Ban target"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /banUser [post]
func (h *RoomHandler) BanMember(c echo.Context) error {
	var req MemberEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.BanMember(c.Request().Context(), req.RoomCode, requesterEmail(c), req.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "user banned successfully",
		"room":    roomSummary(room),
	})
}

// ExitRoom godoc
// @Summary Leave a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body MemberEmailRequest true "Leaving member"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /exitRoom [post]
func (h *RoomHandler) ExitRoom(c echo.Context) error {
	var req MemberEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.ExitRoom(c.Request().Context(), req.RoomCode, req.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "user exited successfully",
		"room":    roomSummary(room),
	})
}

// LoadMembers godoc
// @Summary Member display names for a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body RoomCodeRequest true "Room code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /loadUsers [post]
func (h *RoomHandler) LoadMembers(c echo.Context) error {
	var req RoomCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	names, err := h.roomService.MemberNames(c.Request().Context(), req.RoomCode)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "users found",
		"users":   names,
	})
}
