package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/handle"
)

// RegisterCommentRoutes 注册评论编辑/删除路由。评论的列表与发表挂在照片路由下.
func RegisterCommentRoutes(g *gin.RouterGroup) {
	comments := g.Group("/comments")
	{
		comments.PATCH("/:id", handle.UpdateComment)
		comments.DELETE("/:id", handle.DeleteComment)
	}
}
