package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// StorageType 图片字节的持久化后端.
type StorageType string

const (
	// StorageLocal 本地文件系统（树莓派挂载盘部署）.
	StorageLocal StorageType = "local"
	// StorageS3 MinIO/S3 对象存储.
	StorageS3 StorageType = "s3"
)

const (
	DefaultStorageType     = StorageLocal
	DefaultPhotosPath      = "./storage/photos"     // 原图目录（local 模式）
	DefaultThumbnailsPath  = "./storage/thumbnails" // 缩略图目录（local 模式）
	DefaultS3Endpoint      = "localhost:9000"       // 默认S3端点
	DefaultS3AccessKey     = "minioadmin"           // 默认访问密钥ID
	DefaultS3SecretKey     = "minioadmin"           // 默认秘密访问密钥
	DefaultS3UseSSL        = false                  // 默认是否使用SSL
	DefaultS3BucketName    = "family-album"         // 默认存储桶名称
	DefaultS3Region        = "us-east-1"            // 默认区域
	DefaultAutoCreateDirs  = true                   // local 模式下自动创建目录
	DefaultAutoCreateRetry = 0
)

// StorageConfig 图片/缩略图存储配置.
type StorageConfig struct {
	Type           StorageType `mapstructure:"type"             rule:"oneof=local s3"`
	PhotosPath     string      `mapstructure:"photos_path"`
	ThumbnailsPath string      `mapstructure:"thumbnails_path"`
	AutoCreateDirs bool        `mapstructure:"auto_create_dirs"`

	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
	Region          string `mapstructure:"region"`
}

// GetEndpointURL 获取完整的S3端点URL.
func (c *StorageConfig) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// setDefaults 设置存储配置的默认值.
func (c *StorageConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("storage.type", string(DefaultStorageType))
	v.SetDefault("storage.photos_path", DefaultPhotosPath)
	v.SetDefault("storage.thumbnails_path", DefaultThumbnailsPath)
	v.SetDefault("storage.auto_create_dirs", DefaultAutoCreateDirs)
	v.SetDefault("storage.endpoint", DefaultS3Endpoint)
	v.SetDefault("storage.access_key_id", DefaultS3AccessKey)
	v.SetDefault("storage.secret_access_key", DefaultS3SecretKey)
	v.SetDefault("storage.use_ssl", DefaultS3UseSSL)
	v.SetDefault("storage.bucket_name", DefaultS3BucketName)
	v.SetDefault("storage.region", DefaultS3Region)
}
