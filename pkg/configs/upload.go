package configs

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultMaxBatchFiles  = 5                // 单次上传最多文件数
	DefaultMaxFileSize    = 50 * 1024 * 1024 // 单文件上限 50MB
	DefaultMaxEdge        = 2048             // 存储原图最长边像素
	DefaultThumbnailEdge  = 400              // 缩略图最长边像素
	DefaultJPEGQuality    = 85               // 重编码JPEG质量
	defaultAllowedTypeCSV = "image/jpeg,image/png,image/gif,image/webp,image/heic,image/heif"
)

// UploadConfig 上传管线限制.
type UploadConfig struct {
	MaxBatchFiles int    `mapstructure:"max_batch_files" rule:"min=1"`
	MaxFileSize   int64  `mapstructure:"max_file_size"   rule:"min=1"`
	MaxEdge       int    `mapstructure:"max_edge"        rule:"min=16"`
	ThumbnailEdge int    `mapstructure:"thumbnail_edge"  rule:"min=16"`
	JPEGQuality   int    `mapstructure:"jpeg_quality"    rule:"min=1,max=100"`
	AllowedTypes  string `mapstructure:"allowed_types"`
}

// AllowedTypeSet 返回允许的MIME类型集合.
func (c *UploadConfig) AllowedTypeSet() map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.Split(c.AllowedTypes, ",") {
		if t = strings.TrimSpace(t); t != "" {
			set[strings.ToLower(t)] = true
		}
	}

	return set
}

func (c *UploadConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("upload.max_batch_files", DefaultMaxBatchFiles)
	v.SetDefault("upload.max_file_size", DefaultMaxFileSize)
	v.SetDefault("upload.max_edge", DefaultMaxEdge)
	v.SetDefault("upload.thumbnail_edge", DefaultThumbnailEdge)
	v.SetDefault("upload.jpeg_quality", DefaultJPEGQuality)
	v.SetDefault("upload.allowed_types", defaultAllowedTypeCSV)
}
