package handler

import (
	"github.com/gin-gonic/gin"

	"memopad/internal/middleware"
	"memopad/internal/service"
)

type RouterDeps struct {
	Auth        *AuthHandler
	Memos       *MemoHandler
	AuthService *service.AuthService
}

func RegisterRoutes(engine *gin.Engine, deps RouterDeps) {
	engine.GET("/register", deps.Auth.RegisterPage)
	engine.POST("/register", deps.Auth.Register)
	engine.GET("/login", deps.Auth.LoginPage)
	engine.POST("/login", deps.Auth.Login)

	authed := engine.Group("")
	authed.Use(middleware.SessionAuth(deps.AuthService))
	authed.GET("/", deps.Memos.List)
	authed.GET("/logout", deps.Auth.Logout)
	authed.GET("/memo", deps.Memos.ListAlias)
	authed.GET("/memo/new", deps.Memos.NewPage)
	authed.POST("/memo/new", deps.Memos.Create)
	authed.GET("/memo/:id/edit", deps.Memos.EditPage)
	authed.POST("/memo/:id/edit", deps.Memos.Update)
	// delete is POST only so link prefetching can never trigger it
	authed.POST("/memo/:id/delete", deps.Memos.Delete)
}
