package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/service"
)

// ListOperationLogs 操作审计日志，管理员专属.
func ListOperationLogs(c *gin.Context) {
	svc := service.NewOperationLogService(c.Request.Context())

	resp, err := svc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
