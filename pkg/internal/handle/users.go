package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
	"github.com/khosokawa0716/family-album/pkg/rule"
)

// ListUsers 家族成员列表，管理员专属.
func ListUsers(c *gin.Context) {
	svc := service.NewUserService(c.Request.Context())

	resp, err := svc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateUser 创建家族成员，管理员专属.
func CreateUser(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	svc := service.NewUserService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateUser 编辑家族成员.
func UpdateUser(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	svc := service.NewUserService(c.Request.Context())

	resp, err := svc.Update(c.Request.Context(), userID, req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
