// Package urlsign 生成与校验图片配送用的时限签名URL（HMAC-SHA256）.
// 缩略图网格等场景无法给每个 <img> 附带 Authorization 头，改用签名URL控制访问.
package urlsign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// EndpointType 签名URL指向的资源类别.
type EndpointType string

const (
	// EndpointThumbnails 缩略图.
	EndpointThumbnails EndpointType = "thumbnails"
	// EndpointPhotos 原图.
	EndpointPhotos EndpointType = "photos"
)

// Signer 持有密钥的签名器.
type Signer struct {
	secret []byte
}

// New 创建签名器.
func New(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// payload 签名对象固定为 "filename:endpoint:expires".
func (s *Signer) payload(filename string, endpoint EndpointType, expires int64) string {
	return fmt.Sprintf("%s:%s:%d", filename, endpoint, expires)
}

func (s *Signer) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))

	return hex.EncodeToString(mac.Sum(nil))
}

// SignedURL 生成带签名与有效期的相对URL。filename 形如 "<family_id>/<object>"，
// 路径段本身是URL安全的（数字ID + ULID），按原样嵌入.
func (s *Signer) SignedURL(filename string, endpoint EndpointType, ttl time.Duration, now time.Time) string {
	expires := now.Add(ttl).Unix()
	sig := s.sign(s.payload(filename, endpoint, expires))

	return fmt.Sprintf("/api/%s/%s?signature=%s&expires=%d",
		endpoint, filename, sig, expires)
}

// Verify 校验签名与有效期。过期或签名不符返回 false.
func (s *Signer) Verify(filename string, endpoint EndpointType, signature string, expires int64, now time.Time) bool {
	if now.Unix() > expires {
		return false
	}

	expected := s.sign(s.payload(filename, endpoint, expires))

	return hmac.Equal([]byte(signature), []byte(expected))
}
