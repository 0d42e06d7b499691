package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
)

// testOpts 测试用变换参数.
var testOpts = Options{MaxEdge: 2048, ThumbEdge: 400, JPEGQuality: 85}

// newTestImage 生成带渐变的测试图像，避免纯色被编码器过度压缩.
func newTestImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	return buf.Bytes()
}

// TestProcessScalesDownLongEdge 最长边超限时等比缩小到恰好 MaxEdge.
func TestProcessScalesDownLongEdge(t *testing.T) {
	raw := encodeJPEG(t, newTestImage(3000, 1800))

	res, err := Process(raw, FormatJPEG, testOpts)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if res.Width != 2048 {
		t.Errorf("width: got %d, want 2048", res.Width)
	}

	// 1800 * (2048/3000) = 1228.8 → 1229
	if res.Height != 1229 {
		t.Errorf("height: got %d, want 1229", res.Height)
	}

	if res.MimeType != "image/jpeg" || res.Ext != ".jpg" {
		t.Errorf("jpeg should stay jpeg: %s %s", res.MimeType, res.Ext)
	}

	if len(res.Thumb) == 0 {
		t.Error("thumbnail should not be empty")
	}
}

// TestProcessKeepsSmallImage 未超限的图像不放大.
func TestProcessKeepsSmallImage(t *testing.T) {
	raw := encodePNG(t, newTestImage(640, 480))

	res, err := Process(raw, FormatPNG, testOpts)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if res.Width != 640 || res.Height != 480 {
		t.Errorf("dimensions changed: %dx%d", res.Width, res.Height)
	}

	if res.MimeType != "image/png" {
		t.Errorf("png should stay png: %s", res.MimeType)
	}
}

// TestProcessRejectsCorruptData 无法解码的数据返回 processing 类错误.
func TestProcessRejectsCorruptData(t *testing.T) {
	_, err := Process([]byte("not an image at all"), FormatJPEG, testOpts)
	if err == nil {
		t.Fatal("corrupt data should fail")
	}

	if got := apperr.KindOf(err); got != apperr.KindProcessing {
		t.Fatalf("expected processing error, got %s", got)
	}
}

// TestDetectFormat MIME判定与HEIC扩展名兜底.
func TestDetectFormat(t *testing.T) {
	tests := []struct {
		mime     string
		filename string
		want     Format
		wantErr  bool
	}{
		{"image/jpeg", "a.jpg", FormatJPEG, false},
		{"image/jpg", "a.jpg", FormatJPEG, false},
		{"IMAGE/PNG", "b.png", FormatPNG, false},
		{"image/gif", "c.gif", FormatGIF, false},
		{"image/webp", "d.webp", FormatWebP, false},
		{"image/heic", "e.heic", FormatHEIC, false},
		{"image/jpeg; charset=binary", "a.jpg", FormatJPEG, false},
		// iOS 客户端常见：MIME 缺失或泛化，按扩展名识别 HEIC
		{"", "IMG_0001.HEIC", FormatHEIC, false},
		{"application/octet-stream", "IMG_0001.heif", FormatHEIC, false},
		{"application/pdf", "doc.pdf", 0, true},
		{"", "notes.txt", 0, true},
		{"video/mp4", "clip.mp4", 0, true},
	}

	for _, tt := range tests {
		got, err := DetectFormat(tt.mime, tt.filename)

		if tt.wantErr {
			if err == nil {
				t.Errorf("%s %s: expected error", tt.mime, tt.filename)
			} else if kind := apperr.KindOf(err); kind != apperr.KindValidation {
				t.Errorf("%s %s: expected validation error, got %s", tt.mime, tt.filename, kind)
			}

			continue
		}

		if err != nil {
			t.Errorf("%s %s: %v", tt.mime, tt.filename, err)

			continue
		}

		if got != tt.want {
			t.Errorf("%s %s: got %s, want %s", tt.mime, tt.filename, got, tt.want)
		}
	}
}

// TestApplyOrientationSwapsDimensions 方向值 5–8 需要交换宽高.
func TestApplyOrientationSwapsDimensions(t *testing.T) {
	src := newTestImage(40, 20)

	for _, o := range []int{5, 6, 7, 8} {
		dst := applyOrientation(src, o)
		b := dst.Bounds()

		if b.Dx() != 20 || b.Dy() != 40 {
			t.Errorf("orientation %d: got %dx%d, want 20x40", o, b.Dx(), b.Dy())
		}
	}

	for _, o := range []int{2, 3, 4} {
		dst := applyOrientation(src, o)
		b := dst.Bounds()

		if b.Dx() != 40 || b.Dy() != 20 {
			t.Errorf("orientation %d: got %dx%d, want 40x20", o, b.Dx(), b.Dy())
		}
	}
}

// TestApplyOrientationRotate90 顺时针90°：原图左上角移动到新图右上角.
func TestApplyOrientationRotate90(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	marker := color.NRGBA{R: 255, A: 255}
	src.Set(0, 0, marker)

	dst := applyOrientation(src, 6)

	if got := dst.At(1, 0); got != marker {
		t.Errorf("top-left should move to top-right: got %v", got)
	}
}

// TestScaleDownRatio 纵向图以高度为最长边.
func TestScaleDownRatio(t *testing.T) {
	img := scaleDown(newTestImage(1800, 3000), 2048)
	b := img.Bounds()

	if b.Dy() != 2048 {
		t.Errorf("height: got %d, want 2048", b.Dy())
	}

	if b.Dx() != 1229 {
		t.Errorf("width: got %d, want 1229", b.Dx())
	}
}
