package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/auth"
	"github.com/Anuragkundu/WorkFlowHQ/internal/services"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/responses"
)

// AuthMiddleware validates the Bearer token and resolves the stable user
// id every owner-scoped operation is keyed by. A request without a valid
// identity performs no operation at all.
func AuthMiddleware(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Authorization header required", ""))
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("token validation failed")
			c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Invalid token", ""))
			c.Abort()
			return
		}

		if userService.Enabled() {
			userResponse, err := userService.GetUserByID(c.Request.Context(), claims.UserID.String())
			if err != nil {
				logger.Log.Warn().Err(err).Str("userId", claims.UserID.String()).Msg("failed to verify user")
				c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("User not found", ""))
				c.Abort()
				return
			}
			if userResponse == nil || userResponse.User.UserID == "" {
				c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("User not found", ""))
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
