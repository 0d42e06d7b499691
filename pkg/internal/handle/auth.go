package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
	"github.com/khosokawa0716/family-album/pkg/rule"
)

// Login 用户名密码登录，签发访问令牌.
func Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	svc := service.NewAuthService(c.Request.Context())

	resp, err := svc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout 登出确认.
func Logout(c *gin.Context) {
	svc := service.NewAuthService(c.Request.Context())

	if err := svc.Logout(c.Request.Context()); err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "logged out"})
}

// Me 当前登录用户信息.
func Me(c *gin.Context) {
	svc := service.NewAuthService(c.Request.Context())

	resp, err := svc.Me(c.Request.Context())
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
