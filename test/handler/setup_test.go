package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"memopad/internal/handler"
	"memopad/internal/middleware"
	"memopad/internal/pkg/session"
	"memopad/internal/repo"
	"memopad/internal/service"
	"memopad/internal/web"
	"memopad/test/testutil"
)

func setupRouter(t *testing.T) (http.Handler, *sqlx.DB, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, cleanup := testutil.OpenTestDB(t)
	userRepo := repo.NewUserRepo(db)
	memoRepo := repo.NewMemoRepo(db)

	authService := service.NewAuthService(userRepo, []byte("test-secret"), time.Hour)
	memoService := service.NewMemoService(memoRepo)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.SetHTMLTemplate(web.Templates())
	handler.RegisterRoutes(engine, handler.RouterDeps{
		Auth:        handler.NewAuthHandler(authService),
		Memos:       handler.NewMemoHandler(memoService),
		AuthService: authService,
	})

	return engine, db, cleanup
}

func exec(db *sqlx.DB, query string, args ...interface{}) error {
	_, err := db.Exec(query, args...)
	return err
}

func postForm(router http.Handler, path string, form url.Values, sessionToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionToken})
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func getPage(router http.Handler, path, sessionToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionToken})
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func responseCookie(resp *httptest.ResponseRecorder, name string) string {
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func registerUser(t *testing.T, router http.Handler, username, password string) {
	t.Helper()
	resp := postForm(router, "/register", url.Values{
		"username": {username},
		"password": {password},
	}, "")
	require.Equal(t, http.StatusSeeOther, resp.Code)
	require.Equal(t, "/login", resp.Header().Get("Location"))
}

func loginUser(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()
	resp := postForm(router, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, "")
	require.Equal(t, http.StatusSeeOther, resp.Code)
	require.Equal(t, "/", resp.Header().Get("Location"))
	token := responseCookie(resp, session.CookieName)
	require.NotEmpty(t, token)
	return token
}
