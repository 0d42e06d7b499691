// Package handle 实现HTTP处理器，负责参数绑定与错误到状态码的映射，业务在 service 层.
package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/log"
)

// statusOf 错误类别到HTTP状态码的唯一映射.
func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindProcessing:
		return http.StatusUnprocessableEntity
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict, apperr.KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError 统一错误出口。5xx 不向客户端透出内部细节.
func abortWithError(c *gin.Context, err error) {
	status := statusOf(apperr.KindOf(err))

	if status >= http.StatusInternalServerError {
		log.Logger().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})

		return
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// uintParam 解析路径中的数字ID.
func uintParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		abortWithError(c, apperr.Validation("invalid "+name))

		return 0, false
	}

	return uint(n), true
}
