package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/configs"
)

// CORSMiddleware CORS中间件.
func CORSMiddleware(cfg configs.ServerConfig) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")

	if !cfg.Debug && len(cfg.AllowOrigins) > 0 {
		config.AllowAllOrigins = false
		config.AllowOrigins = cfg.AllowOrigins
	}

	return cors.New(config)
}
