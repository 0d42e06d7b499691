package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
	"github.com/khosokawa0716/family-album/pkg/rule"
)

// ListCategories 家族内有效分类.
func ListCategories(c *gin.Context) {
	svc := service.NewCategoryService(c.Request.Context())

	resp, err := svc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateCategory 新建分类，管理员专属.
func CreateCategory(c *gin.Context) {
	req, ok := bindCategory(c)
	if !ok {
		return
	}

	svc := service.NewCategoryService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), *req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateCategory 编辑分类，管理员专属.
func UpdateCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	req, ok := bindCategory(c)
	if !ok {
		return
	}

	svc := service.NewCategoryService(c.Request.Context())

	resp, err := svc.Update(c.Request.Context(), id, *req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteCategory 软删除分类，管理员专属.
func DeleteCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	svc := service.NewCategoryService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "category deleted"})
}

func bindCategory(c *gin.Context) (*types.CategoryRequest, bool) {
	var req types.CategoryRequest
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
