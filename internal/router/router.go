package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"quizroom/internal/handler"
	"quizroom/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	roomHandler *handler.RoomHandler,
	questionHandler *handler.QuestionHandler,
	gameHandler *handler.GameHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/api", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Quiz App"})
	})

	// Public routes
	e.POST("/addUser", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/joinGuest", roomHandler.JoinGuest)
	e.POST("/room", roomHandler.GetRoom)
	e.POST("/loadUsers", roomHandler.LoadMembers)
	e.POST("/exitRoom", roomHandler.ExitRoom)
	e.POST("/getQuestions", questionHandler.GetQuestions)
	e.POST("/getQuestion", questionHandler.GetQuestion)
	e.POST("/getGameStatus", gameHandler.GameStatus)
	e.POST("/submitAnswer", gameHandler.SubmitAnswer)
	e.POST("/leaderboard", gameHandler.Leaderboard)

	// Secured routes: signature and revocation are both checked before the
	// handler runs, and the verified email lands in the request context.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := authService.VerifyToken(c.Request().Context(), token)
			if err != nil {
				return nil, err
			}
			c.Set(handler.EmailContextKey, claims.Subject)
			return claims, nil
		},
	}))

	secured.POST("/logout", authHandler.Logout)
	secured.POST("/createRoom", roomHandler.CreateRoom)
	secured.POST("/joinRoom", roomHandler.JoinRoom)
	secured.POST("/deleteRoom", roomHandler.DeleteRoom)
	secured.POST("/banUser", roomHandler.BanMember)
	secured.POST("/addQuestion", questionHandler.AddQuestion)
	secured.POST("/deleteQuestion", questionHandler.DeleteQuestion)
	secured.POST("/startGame", gameHandler.StartGame)
	secured.POST("/endGame", gameHandler.EndGame)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
