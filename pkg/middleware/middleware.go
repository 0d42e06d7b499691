// Package middleware 提供中间件
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/storage"
)

// StorageMiddleware 把存储管理器注入请求上下文，供服务层取用.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
