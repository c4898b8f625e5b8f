package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memopad/internal/pkg/session"
	"memopad/internal/service"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// SessionAuth resolves the current user from the session cookie. Requests
// without a valid session are redirected to the login page, never served.
func SessionAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}
		user, err := auth.ResolveSession(c.Request.Context(), token)
		if err != nil {
			redirectToLogin(c)
			return
		}
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUsernameKey, user.Username)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
