package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/configs"
	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
)

// Hello 根路径问候.
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "family album api",
		"version": configs.AppVersion,
	})
}

// Health 健康检查，附带数据库连通性.
func Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"

	if dbc := ctxPkg.GetDBClient(c.Request.Context()); dbc != nil {
		if sqlDB, err := dbc.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
	} else {
		status = "degraded"
		dbStatus = "not initialized"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"db":      dbStatus,
		"version": configs.AppVersion,
	})
}
