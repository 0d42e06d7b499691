package imaging

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/jdeng/goheif"
	"golang.org/x/image/webp"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
)

// Format 支持的上传图片格式，封闭集合.
type Format int

const (
	FormatJPEG Format = iota + 1
	FormatPNG
	FormatGIF
	FormatWebP
	FormatHEIC
)

// String 返回格式名.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatGIF:
		return "gif"
	case FormatWebP:
		return "webp"
	case FormatHEIC:
		return "heic"
	default:
		return "unknown"
	}
}

// genericMimes 移动端常见的"没说清"MIME，允许用扩展名兜底.
var genericMimes = map[string]bool{
	"":                         true,
	"application/octet-stream": true,
	"binary/octet-stream":      true,
}

// DetectFormat 根据声明的 MIME 判定格式。HEIC/HEIF 在 MIME 缺失或泛化时
// 允许按 .heic/.heif 扩展名识别（iOS 客户端经常不带 MIME）。
// 不支持的类型返回 validation 类错误.
func DetectFormat(claimedMime, filename string) (Format, error) {
	mime := strings.ToLower(strings.TrimSpace(claimedMime))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	switch mime {
	case "image/jpeg", "image/jpg":
		return FormatJPEG, nil
	case "image/png":
		return FormatPNG, nil
	case "image/gif":
		return FormatGIF, nil
	case "image/webp":
		return FormatWebP, nil
	case "image/heic", "image/heif":
		return FormatHEIC, nil
	}

	if genericMimes[mime] {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".heic", ".heif":
			return FormatHEIC, nil
		}
	}

	return 0, apperr.Newf(apperr.KindValidation, "unsupported file type %q for %q", claimedMime, filename)
}

// decode 按格式解码为内存图像。GIF 只取第一帧.
func decode(raw []byte, format Format) (image.Image, error) {
	r := bytes.NewReader(raw)

	switch format {
	case FormatJPEG:
		return jpeg.Decode(r)
	case FormatPNG:
		return png.Decode(r)
	case FormatGIF:
		return gif.Decode(r)
	case FormatWebP:
		return webp.Decode(r)
	case FormatHEIC:
		return goheif.Decode(r)
	default:
		return nil, apperr.Newf(apperr.KindProcessing, "no decoder for format %s", format)
	}
}
