package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"annapurna/internal/repositories"
	"annapurna/pkg/utils"
)

// ContextUserIDKey is where the verified account id lands for
// downstream handlers.
const ContextUserIDKey = "user_id"

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// JWTAuthMiddleware verifies the bearer token and attaches the user id.
// It does not touch the account store; handlers that only need a valid
// session (the chat endpoint) stay independent of storage.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		userID, err := utils.ValidateToken(token)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// AdminAuthMiddleware additionally resolves the account through the
// dual-mode store and requires the admin flag. The token carries no
// capability claim; admin status is re-derived from the currently
// active backend on every request, so revoking the flag takes effect
// on the next call.
func AdminAuthMiddleware(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		userID, err := utils.ValidateToken(token)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if user == nil || !user.IsAdmin {
			utils.RespondError(c, http.StatusForbidden, "Access denied. Admin only.")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
