package handle

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/configs"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/log"
	"github.com/khosokawa0716/family-album/pkg/urlsign"
)

// ServeThumbnail 经签名URL配送缩略图，无需 Authorization 头.
func ServeThumbnail(c *gin.Context) {
	serveSigned(c, urlsign.EndpointThumbnails)
}

// ServePhoto 经签名URL配送原图.
func ServePhoto(c *gin.Context) {
	serveSigned(c, urlsign.EndpointPhotos)
}

// serveSigned 校验签名与有效期后流式返回字节。签名失败一律 403，
// 不区分过期与伪造.
func serveSigned(c *gin.Context, endpoint urlsign.EndpointType) {
	// 通配路由参数带前导斜杠
	filename := strings.TrimPrefix(c.Param("filename"), "/")
	signature := c.Query("signature")

	expires, err := strconv.ParseInt(c.Query("expires"), 10, 64)
	if err != nil || signature == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid signature"})

		return
	}

	signer := urlsign.New(configs.GetConfig().Auth.SecretKey)
	if !signer.Verify(filename, endpoint, signature, expires, time.Now()) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired signature"})

		return
	}

	svc := service.NewPictureService(c.Request.Context())

	rc, contentType, err := svc.OpenSigned(c.Request.Context(), filename, endpoint)
	if err != nil {
		abortWithError(c, err)

		return
	}
	defer rc.Close()

	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "private, max-age=1800")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, rc); err != nil {
		log.Logger().Warn().Err(err).Str("file", filename).Msg("stream media failed")
	}
}
