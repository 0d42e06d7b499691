package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
	"github.com/khosokawa0716/family-album/pkg/rule"
)

// ListComments 照片下的评论.
func ListComments(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	svc := service.NewCommentService(c.Request.Context())

	resp, err := svc.ListByPicture(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateComment 对照片发表评论.
func CreateComment(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	req, ok := bindComment(c)
	if !ok {
		return
	}

	svc := service.NewCommentService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), id, *req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateComment 编辑评论，作者或管理员.
func UpdateComment(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	req, ok := bindComment(c)
	if !ok {
		return
	}

	svc := service.NewCommentService(c.Request.Context())

	resp, err := svc.Update(c.Request.Context(), id, *req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteComment 删除评论，作者或管理员.
func DeleteComment(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	svc := service.NewCommentService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "comment deleted"})
}

func bindComment(c *gin.Context) (*types.CommentRequest, bool) {
	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return nil, false
	}

	if err := rule.ValidateStruct(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return nil, false
	}

	return &req, true
}
