package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/configs"
	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/dao"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
)

// AuthMiddleware 解析 Bearer 令牌并把认证身份注入请求上下文。
// 令牌只携带用户ID等少量信息，角色与停用状态以数据库当前值为准，
// 令牌签发后被停用的账号立即失效.
func AuthMiddleware(conf configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})

			return
		}

		claims, err := service.ParseToken(conf.SecretKey, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})

			return
		}

		ctx := c.Request.Context()

		dbc := ctxPkg.GetDBClient(ctx)
		if dbc == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "storage not ready"})

			return
		}

		user, err := dao.NewUsers(dbc.DB).GetByID(ctx, claims.UserID)
		if err != nil || !user.IsActive() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})

			return
		}

		c.Request = c.Request.WithContext(ctxPkg.WithIdentity(ctx, guard.IdentityOf(user)))
		c.Next()
	}
}

// bearerToken 提取 "Bearer xxx" 形式的令牌.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
