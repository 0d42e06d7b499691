package imaging

import (
	"bytes"
	"image"
	"time"

	"github.com/jdeng/goheif"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
)

// orientationNone EXIF 方向值 1（或缺失），无需变换.
const orientationNone = 1

// imageMeta 从 EXIF 提取的元数据.
type imageMeta struct {
	orientation int
	takenAt     *time.Time
}

// extractMeta 提取 EXIF 方向与拍摄时间。PNG/GIF/WebP 无 EXIF，返回默认值；
// JPEG/HEIC 缺失 EXIF 同样按默认值处理，但方向值超出 1–8 视为处理错误.
func extractMeta(raw []byte, format Format) (imageMeta, error) {
	meta := imageMeta{orientation: orientationNone}

	var exifBytes []byte

	switch format {
	case FormatJPEG:
		exifBytes = raw
	case FormatHEIC:
		b, err := goheif.ExtractExif(bytes.NewReader(raw))
		if err != nil || len(b) == 0 {
			return meta, nil
		}

		exifBytes = b
	default:
		return meta, nil
	}

	x, err := exif.Decode(bytes.NewReader(exifBytes))
	if err != nil {
		// 没有EXIF段不算错误
		return meta, nil
	}

	if tag, err := x.Get(exif.Orientation); err == nil {
		if o, err := tag.Int(0); err == nil {
			if o < 1 || o > 8 {
				return meta, apperr.Newf(apperr.KindProcessing, "unsupported EXIF orientation value %d", o)
			}

			meta.orientation = o
		}
	}

	if t, err := x.DateTime(); err == nil {
		meta.takenAt = &t
	}

	return meta, nil
}

// applyOrientation 按 EXIF 方向值 2–8 重排像素，使存储图像天然朝上.
// 映射遵循 EXIF 2.3 规范：5–8 需要交换宽高.
func applyOrientation(src image.Image, orientation int) image.Image {
	if orientation <= orientationNone || orientation > 8 {
		return src
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.NRGBA
	if orientation >= 5 {
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
	} else {
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.At(b.Min.X+x, b.Min.Y+y)

			var dx, dy int

			switch orientation {
			case 2: // 水平镜像
				dx, dy = w-1-x, y
			case 3: // 旋转180°
				dx, dy = w-1-x, h-1-y
			case 4: // 垂直镜像
				dx, dy = x, h-1-y
			case 5: // 转置
				dx, dy = y, x
			case 6: // 顺时针90°
				dx, dy = h-1-y, x
			case 7: // 反转置
				dx, dy = h-1-y, w-1-x
			case 8: // 逆时针90°
				dx, dy = y, w-1-x
			}

			dst.Set(dx, dy, c)
		}
	}

	return dst
}
