package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appErr "memopad/internal/pkg/errors"
	"memopad/internal/pkg/session"
	"memopad/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register", gin.H{"title": "Register"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	plain := c.PostForm("password")
	if username == "" || plain == "" {
		setFlash(c, "Username and password are required.")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}
	if _, err := h.auth.Register(c.Request.Context(), username, plain); err != nil {
		if appErr.IsConflict(err) {
			setFlash(c, "That username is already taken.")
			c.Redirect(http.StatusSeeOther, "/register")
			return
		}
		handleError(c, err)
		return
	}
	setFlash(c, "Account created. Please log in.")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login", gin.H{"title": "Log in"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	plain := c.PostForm("password")
	_, token, err := h.auth.Login(c.Request.Context(), username, plain)
	if err != nil {
		// a single notice for unknown user and bad password alike
		setFlash(c, "Invalid username or password.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	c.SetCookie(session.CookieName, token, int(h.auth.SessionTTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	setFlash(c, "You have been logged out.")
	c.Redirect(http.StatusSeeOther, "/login")
}
