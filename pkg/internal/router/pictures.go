package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/handle"
)

// RegisterPictureRoutes 注册照片摄取、生命周期与组相关路由.
func RegisterPictureRoutes(g *gin.RouterGroup) {
	pictures := g.Group("/pictures")
	{
		pictures.GET("", handle.ListPictures)
		pictures.POST("", handle.UploadPictures)

		// 回收站列表（管理员）
		pictures.GET("/deleted", handle.ListDeletedPictures)

		single := pictures.Group("/:id")
		{
			single.GET("", handle.GetPicture)
			single.PATCH("", handle.UpdatePicture)
			single.DELETE("", handle.DeletePicture)

			single.GET("/download", handle.DownloadPicture)
			single.PUT("/restore", handle.RestorePicture)
			single.DELETE("/purge", handle.PurgePicture)

			single.GET("/comments", handle.ListComments)
			single.POST("/comments", handle.CreateComment)
		}
	}

	// 按上传组取整组照片
	g.GET("/groups/:group_id", handle.GetPictureGroup)
}
