package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// ListDeletedPictures 回收站列表，管理员专属.
func ListDeletedPictures(c *gin.Context) {
	var q types.ListPicturesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	svc := service.NewPictureService(c.Request.Context())

	resp, err := svc.ListDeleted(c.Request.Context(), q)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeletePicture 软删除照片.
func DeletePicture(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	svc := service.NewPictureService(c.Request.Context())

	if err := svc.SoftDelete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "picture deleted"})
}

// RestorePicture 从回收站恢复照片.
func RestorePicture(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	svc := service.NewPictureService(c.Request.Context())

	if err := svc.Restore(c.Request.Context(), id); err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "picture restored"})
}

// PurgePicture 彻底清除照片，不可逆.
func PurgePicture(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	svc := service.NewPictureService(c.Request.Context())

	if err := svc.Purge(c.Request.Context(), id); err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "picture purged"})
}
