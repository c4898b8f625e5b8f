package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"memopad/internal/middleware"
	appErr "memopad/internal/pkg/errors"
)

const flashCookieName = "memopad_flash"

func currentUserID(c *gin.Context) int64 {
	value, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := value.(int64)
	return userID
}

func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErr.ErrNotFound
	}
	return id, nil
}

// setFlash stores a one-shot notice; the next rendered page pops it.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

func popFlash(c *gin.Context) (string, bool) {
	value, err := c.Cookie(flashCookieName)
	if err != nil || value == "" {
		return "", false
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return value, true
}

func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["title"]; !ok {
		data["title"] = name
	}
	if flash, ok := popFlash(c); ok {
		data["flash"] = flash
	}
	if username, ok := c.Get(middleware.ContextUsernameKey); ok {
		data["username"] = username
	}
	c.HTML(status, name, data)
}

// handleError is the recovery boundary: every service error becomes a
// redirect with a notice or a plain status page, never a propagated failure.
func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, appErr.ErrUnauthorized):
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, appErr.ErrForbidden):
		setFlash(c, "That operation is not allowed.")
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, appErr.ErrNotFound):
		c.String(http.StatusNotFound, "404 Not Found")
	default:
		requestID, _ := c.Get(middleware.ContextRequestIDKey)
		logutil.GetLogger(c.Request.Context()).Error("request failed",
			zap.Any("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int64("user_id", currentUserID(c)),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, "500 Internal Server Error")
	}
}
