package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quizroom/internal/errors"
	"quizroom/internal/service"
)

// GameHandler handles game state, answer submission and the leaderboard.
type GameHandler struct {
	roomService  service.RoomService
	scoreService service.ScoreService
}

// NewGameHandler creates a new game handler.
func NewGameHandler(roomService service.RoomService, scoreService service.ScoreService) *GameHandler {
	return &GameHandler{roomService: roomService, scoreService: scoreService}
}

// SubmitAnswerRequest represents one answer submission. The client echoes the
// correct label and base point from the question it was served.
type SubmitAnswerRequest struct {
	RoomCode       string `json:"roomCode" validate:"required"`
	UserID         string `json:"userID" validate:"required"`
	QuestionNumber int    `json:"questionNumber" validate:"required,min=1"`
	Answer         string `json:"answer"`
	Correct        string `json:"correct" validate:"required"`
	Point          int    `json:"point" validate:"min=0"`
	TimeTaken      int    `json:"timeTaken" validate:"min=0"`
}

// SubmitAnswerResponse reports correctness and the sequence status.
type SubmitAnswerResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// StartGame godoc
// @Summary Mark the game as started
// @Tags game
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RoomCodeRequest true "Room code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /startGame [post]
func (h *GameHandler) StartGame(c echo.Context) error {
	return h.setGameStarted(c, true, "game started successfully")
}

// EndGame godoc
// @Summary Mark the game as not started
// @Tags game
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RoomCodeRequest true "Room code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /endGame [post]
func (h *GameHandler) EndGame(c echo.Context) error {
	return h.setGameStarted(c, false, "game ended successfully")
}

func (h *GameHandler) setGameStarted(c echo.Context, started bool, message string) error {
	var req RoomCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.SetGameStarted(c.Request().Context(), req.RoomCode, started)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": message,
		"room":    roomSummary(room),
	})
}

// GameStatus godoc
// @Summary Whether the game has been started
// @Tags game
// @Accept json
// @Produce json
// @Param request body RoomCodeRequest true "Room code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /getGameStatus [post]
func (h *GameHandler) GameStatus(c echo.Context) error {
	var req RoomCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	started, err := h.roomService.GameStatus(c.Request().Context(), req.RoomCode)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "game status found",
		"gameStarted": started,
	})
}

// SubmitAnswer godoc
// @Summary Submit an answer and collect a time-decayed award
// @Tags game
// @Accept json
// @Produce json
// @Param request body SubmitAnswerRequest true "Answer data"
// @Success 200 {object} SubmitAnswerResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /submitAnswer [post]
func (h *GameHandler) SubmitAnswer(c echo.Context) error {
	var req SubmitAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.scoreService.SubmitAnswer(c.Request().Context(), service.SubmitAnswerInput{
		Code:           req.RoomCode,
		UserID:         req.UserID,
		QuestionNumber: req.QuestionNumber,
		Chosen:         req.Answer,
		Correct:        req.Correct,
		BasePoint:      req.Point,
		TimeTakenMs:    req.TimeTaken,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	message := "incorrect answer"
	if result.Correct {
		message = "correct answer"
	}
	return c.JSON(http.StatusOK, SubmitAnswerResponse{
		Message: message,
		Status:  result.Status,
	})
}

// Leaderboard godoc
// @Summary Scoreboard sorted by points, owner excluded
// @Tags game
// @Accept json
// @Produce json
// @Param request body RoomCodeRequest true "Room code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /leaderboard [post]
func (h *GameHandler) Leaderboard(c echo.Context) error {
	var req RoomCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	board, err := h.roomService.GetLeaderboard(c.Request().Context(), req.RoomCode)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "leaderboard found",
		"roomName":    board.RoomName,
		"leaderboard": board.Entries,
		"owner":       board.OwnerEmail,
	})
}
