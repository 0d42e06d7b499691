package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/handle"
)

// RegisterUserRoutes 注册用户相关路由.
func RegisterUserRoutes(g *gin.RouterGroup) {
	users := g.Group("/users")
	{
		users.GET("/me", handle.Me)
		users.GET("", handle.ListUsers)
		users.POST("", handle.CreateUser)
		users.PATCH("/:id", handle.UpdateUser)
	}
}
