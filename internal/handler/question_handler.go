package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quizroom/internal/errors"
	"quizroom/internal/model"
	"quizroom/internal/service"
)

// QuestionHandler handles question CRUD endpoints.
type QuestionHandler struct {
	roomService service.RoomService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(roomService service.RoomService) *QuestionHandler {
	return &QuestionHandler{roomService: roomService}
}

// QuestionAnswers carries the four option texts.
type QuestionAnswers struct {
	A string `json:"a" validate:"required"`
	B string `json:"b" validate:"required"`
	C string `json:"c" validate:"required"`
	D string `json:"d" validate:"required"`
}

// AddQuestionRequest represents an add-question request.
type AddQuestionRequest struct {
	RoomCode string          `json:"roomCode" validate:"required"`
	Question string          `json:"question" validate:"required"`
	Answers  QuestionAnswers `json:"answers" validate:"required"`
	Correct  string          `json:"correct" validate:"required,oneof=a b c d"`
	Point    int             `json:"point" validate:"required,min=1"`
	Time     int             `json:"time" validate:"required,min=1"`
}

// DeleteQuestionRequest targets a question by id.
type DeleteQuestionRequest struct {
	RoomCode   string `json:"roomCode" validate:"required"`
	QuestionID string `json:"questionID" validate:"required"`
}

// GetQuestionRequest targets a question by 1-based position.
type GetQuestionRequest struct {
	RoomCode       string `json:"roomCode" validate:"required"`
	QuestionNumber int    `json:"questionNumber" validate:"required,min=1"`
}

// AddQuestion godoc
// @Summary Append a question to a room
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddQuestionRequest true "Question data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /addQuestion [post]
func (h *QuestionHandler) AddQuestion(c echo.Context) error {
	var req AddQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	question := model.Question{
		Text: req.Question,
		Answers: map[string]string{
			"a": req.Answers.A,
			"b": req.Answers.B,
			"c": req.Answers.C,
			"d": req.Answers.D,
		},
		Correct: req.Correct,
		Point:   req.Point,
		Time:    req.Time,
	}

	room, err := h.roomService.AddQuestion(c.Request().Context(), req.RoomCode, question)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "question added successfully",
		"room":    roomSummary(room),
	})
}

// DeleteQuestion godoc
// @Summary Remove a question by id
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteQuestionRequest true "Question id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /deleteQuestion [post]
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	var req DeleteQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.DeleteQuestion(c.Request().Context(), req.RoomCode, req.QuestionID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "question deleted successfully",
		"room":    roomSummary(room),
	})
}

// GetQuestions godoc
// @Summary All questions in quiz order
// @Tags questions
// @Accept json
// @Produce json
// @Param request body RoomCodeRequest true "Room code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /getQuestions [post]
func (h *QuestionHandler) GetQuestions(c echo.Context) error {
	var req RoomCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	questions, err := h.roomService.GetQuestions(c.Request().Context(), req.RoomCode)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "questions found",
		"questions": questions,
	})
}

// GetQuestion godoc
// @Summary One question by 1-based position
// @Tags questions
// @Accept json
// @Produce json
// @Param request body GetQuestionRequest true "Question position"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /getQuestion [post]
func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	var req GetQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	question, err := h.roomService.GetQuestion(c.Request().Context(), req.RoomCode, req.QuestionNumber)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "question found",
		"question": question,
	})
}
