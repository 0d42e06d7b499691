package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/handle"
)

// RegisterMediaRoutes 注册签名URL媒体配送路由。访问控制在签名层完成，
// 对象名含家族子目录，使用通配参数.
func RegisterMediaRoutes(g *gin.RouterGroup) {
	g.GET("/thumbnails/*filename", handle.ServeThumbnail)
	g.GET("/photos/*filename", handle.ServePhoto)
}
