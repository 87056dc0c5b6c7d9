package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"quizroom/internal/model"
)

// requesterEmail returns the authenticated email placed into the context by
// the auth middleware.
func requesterEmail(c echo.Context) string {
	email, _ := c.Get(EmailContextKey).(string)
	return email
}

// formatUserID renders a numeric user id the way clients expect member ids:
// as a string, interchangeable with guest uuids.
func formatUserID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// extractBearerToken reads the token out of the Authorization header.
func extractBearerToken(c echo.Context) (string, error) {
	hdr := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(hdr, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("invalid Authorization header")
	}
	return parts[1], nil
}

// roomSummary is the room view returned by most mutations: the full member
// records, question list and shareable code.
func roomSummary(room *model.Room) map[string]interface{} {
	return map[string]interface{}{
		"name":      room.Name,
		"members":   room.Members,
		"questions": room.Questions,
		"code":      room.Code,
	}
}

// roomNamesSummary is the join-time room view: member display names only.
func roomNamesSummary(room *model.Room) map[string]interface{} {
	return map[string]interface{}{
		"name":      room.Name,
		"members":   room.MemberNames(),
		"questions": room.Questions,
		"code":      room.Code,
	}
}
