// Package router 管理路由配置，将路径绑定到 handle 层的处理器.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/configs"
	"github.com/khosokawa0716/family-album/pkg/internal/handle"
	"github.com/khosokawa0716/family-album/pkg/middleware"
)

// Register 注册全部路由。/api/login 与签名媒体端点无需认证，
// 其余 /api 路由都经过 Bearer 认证中间件.
func Register(engine *gin.Engine, cfg *configs.AppConfig) {
	engine.GET("/", handle.Hello)
	engine.GET("/health", handle.Health)

	api := engine.Group("/api")

	// 公开端点
	api.POST("/login", handle.Login)
	RegisterMediaRoutes(api)

	// 认证端点
	authed := api.Group("", middleware.AuthMiddleware(cfg.Auth))
	{
		RegisterPictureRoutes(authed)
		RegisterCategoryRoutes(authed)
		RegisterCommentRoutes(authed)
		RegisterUserRoutes(authed)

		authed.POST("/logout", handle.Logout)
		authed.GET("/logs", handle.ListOperationLogs)
	}
}
