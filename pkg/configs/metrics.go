package configs

import "github.com/spf13/viper"

const (
	DefaultMetricsEnabled = true
	DefaultMetricsPath    = "/metrics"
)

// MetricsConfig 监控指标配置.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func (c *MetricsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("metrics.enabled", DefaultMetricsEnabled)
	v.SetDefault("metrics.path", DefaultMetricsPath)
}
