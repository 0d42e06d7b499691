package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/handle"
)

// RegisterCategoryRoutes 注册分类管理路由.
func RegisterCategoryRoutes(g *gin.RouterGroup) {
	categories := g.Group("/categories")
	{
		categories.GET("", handle.ListCategories)
		categories.POST("", handle.CreateCategory)
		categories.PATCH("/:id", handle.UpdateCategory)
		categories.DELETE("/:id", handle.DeleteCategory)
	}
}
