package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultTokenTTLMinutes = 60 * 24 // 访问令牌有效期（分钟）
	DefaultSignedURLTTL    = 1800    // 签名URL有效期（秒）
	// DefaultOwnerDelete 上传者本人是否可以软删除自己的照片。
	// 原始接口文档对此存在两个版本的描述（仅管理员 / 上传者亦可），故做成显式配置.
	DefaultOwnerDelete = true
)

// AuthConfig 认证与权限配置.
type AuthConfig struct {
	// SecretKey JWT 与签名URL共用的 HMAC 密钥，生产环境必须覆盖默认值.
	SecretKey       string `mapstructure:"secret_key"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes" rule:"min=1"`
	SignedURLTTL    int    `mapstructure:"signed_url_ttl"    rule:"min=1"`
	OwnerDelete     bool   `mapstructure:"owner_delete"`
}

// GetTokenTTL 返回访问令牌有效期.
func (c *AuthConfig) GetTokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// GetSignedURLTTL 返回签名URL有效期.
func (c *AuthConfig) GetSignedURLTTL() time.Duration {
	return time.Duration(c.SignedURLTTL) * time.Second
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.secret_key", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl_minutes", DefaultTokenTTLMinutes)
	v.SetDefault("auth.signed_url_ttl", DefaultSignedURLTTL)
	v.SetDefault("auth.owner_delete", DefaultOwnerDelete)
}
