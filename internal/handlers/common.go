package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Anuragkundu/WorkFlowHQ/internal/repositories"
	"github.com/Anuragkundu/WorkFlowHQ/internal/services"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/responses"
)

// currentUserID pulls the authenticated owner id set by the auth
// middleware. Aborts with 401 when absent.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Authentication required", ""))
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Authentication required", ""))
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a uuid path parameter, answering 400 on garbage.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid id format", raw))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors onto the response envelope. Validation
// and precondition failures carry their own message; anything else is a
// store failure, logged and reported generically.
func respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, responses.NewErrorResponse("Record not found", ""))
	case errors.Is(err, services.ErrNoActiveSession):
		c.JSON(http.StatusConflict, responses.NewErrorResponse("No active time session", ""))
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, responses.NewErrorResponse(err.Error(), ""))
	default:
		logger.Log.Error().Err(err).Str("action", action).Msg("operation failed")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to "+action, ""))
	}
}
