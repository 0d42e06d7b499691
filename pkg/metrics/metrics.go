// Package metrics 提供监控指标功能.
// 支持Prometheus标准，收集HTTP与上传管线指标.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khosokawa0716/family-album/pkg/configs"
)

// 全局指标变量.
var (
	// RequestCounter HTTP请求计数器.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	// RequestDuration HTTP请求持续时间.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// UploadedPictures 成功入库的照片张数.
	UploadedPictures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pictures_uploaded_total",
			Help: "Total number of pictures successfully ingested",
		},
	)

	// UploadedBytes 成功入库的原图字节数（变换后）.
	UploadedBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pictures_uploaded_bytes_total",
			Help: "Total transformed bytes written for ingested pictures",
		},
	)

	// RejectedBatches 校验/处理失败被整体拒绝的上传批次数.
	RejectedBatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upload_batches_rejected_total",
			Help: "Upload batches rejected, by error kind",
		},
		[]string{"kind"},
	)

	// PurgedPictures 被彻底清除的照片张数.
	PurgedPictures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pictures_purged_total",
			Help: "Total number of pictures purged permanently",
		},
	)

	// registry Prometheus注册表.
	registry = prometheus.NewRegistry()
)

// InitMetrics 注册所有指标.
func InitMetrics(cfg configs.MetricsConfig) error {
	if !cfg.Enabled {
		return nil
	}

	collectorList := []prometheus.Collector{
		RequestCounter,
		RequestDuration,
		UploadedPictures,
		UploadedBytes,
		RejectedBatches,
		PurgedPictures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}

	for _, c := range collectorList {
		if err := registry.Register(c); err != nil {
			return err
		}
	}

	return nil
}

// Registry 返回注册表，供 GORM 插件等复用.
func Registry() *prometheus.Registry {
	return registry
}

// Handler 返回挂载在主引擎上的 /metrics 处理器.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
