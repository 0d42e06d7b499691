// Package app 提供应用程序的初始化和启动功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/khosokawa0716/family-album/pkg/configs"
	"github.com/khosokawa0716/family-album/pkg/internal/router"
	"github.com/khosokawa0716/family-album/pkg/internal/storage"
	"github.com/khosokawa0716/family-album/pkg/log"
	"github.com/khosokawa0716/family-album/pkg/metrics"
	"github.com/khosokawa0716/family-album/pkg/middleware"
)

// App 聚合 HTTP 引擎与配置.
type App struct {
	Engine *gin.Engine
	config *configs.AppConfig
}

// NewApp 按固定顺序完成启动：配置 → 日志 → 指标 → 存储 → 中间件 → 路由.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	log.Init()

	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.CORSMiddleware(config.Server),
		middleware.GinLoggerMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.StorageMiddleware(manager),
	)

	if config.Metrics.Enabled {
		engine.GET(config.Metrics.Path, metrics.Handler())
	}

	router.Register(engine, config)

	return &App{
		Engine: engine,
		config: config,
	}
}

// Run 启动HTTP服务.
func (a *App) Run() error {
	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}
