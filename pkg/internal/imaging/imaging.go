// Package imaging 实现上传图片的解码与标准化：HEIC 转码、EXIF 方向矫正、
// 最长边压缩与缩略图派生。包本身不做任何持久化.
package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
)

// Options 变换参数，来自 upload 配置.
type Options struct {
	// MaxEdge 存储原图最长边像素，超过则等比缩小到恰好该值.
	MaxEdge int
	// ThumbEdge 缩略图最长边像素.
	ThumbEdge int
	// JPEGQuality 重编码JPEG质量.
	JPEGQuality int
}

// Result 单张图片的变换产物.
type Result struct {
	// Data 变换后的原图字节（方向已摆正、尺寸已压缩）.
	Data []byte
	// Thumb 缩略图字节，始终为JPEG.
	Thumb []byte
	// MimeType 存储原图的MIME.
	MimeType string
	// Ext 存储文件扩展名，含点.
	Ext string
	// Width/Height 存储原图的像素尺寸.
	Width  int
	Height int
	// TakenAt EXIF 拍摄时间，无法提取时为 nil.
	TakenAt *time.Time
}

// Process 对单个文件执行完整变换。解码失败、方向值非法等返回 processing 类错误.
func Process(raw []byte, format Format, opts Options) (*Result, error) {
	img, err := decode(raw, format)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindProcessing, "decode image", err)
	}

	meta, err := extractMeta(raw, format)
	if err != nil {
		return nil, err
	}

	if meta.orientation != orientationNone {
		img = applyOrientation(img, meta.orientation)
	}

	img = scaleDown(img, opts.MaxEdge)

	data, mimeType, ext, err := encode(img, format, opts.JPEGQuality)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindProcessing, "encode image", err)
	}

	thumb, err := encodeThumb(scaleDown(img, opts.ThumbEdge), opts.JPEGQuality)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindProcessing, "encode thumbnail", err)
	}

	bounds := img.Bounds()

	return &Result{
		Data:     data,
		Thumb:    thumb,
		MimeType: mimeType,
		Ext:      ext,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		TakenAt:  meta.takenAt,
	}, nil
}

// scaleDown 最长边超过 maxEdge 时等比缩小到最长边恰为 maxEdge，否则原样返回.
func scaleDown(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	longest := w
	if h > longest {
		longest = h
	}

	if maxEdge <= 0 || longest <= maxEdge {
		return img
	}

	ratio := float64(maxEdge) / float64(longest)
	nw := int(math.Round(float64(w) * ratio))
	nh := int(math.Round(float64(h) * ratio))

	if w >= h {
		nw = maxEdge
	} else {
		nh = maxEdge
	}

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	return dst
}

// encode 按来源格式重编码：JPEG 保持 JPEG，其余（PNG/GIF/WebP/HEIC）统一存为 PNG.
func encode(img image.Image, format Format, quality int) ([]byte, string, string, error) {
	var buf bytes.Buffer

	if format == FormatJPEG {
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", "", err
		}

		return buf.Bytes(), "image/jpeg", ".jpg", nil
	}

	if err := png.Encode(&buf, img); err != nil {
		return nil, "", "", err
	}

	return buf.Bytes(), "image/png", ".png", nil
}

// encodeThumb 缩略图统一JPEG，体积小且所有客户端可解.
func encodeThumb(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
