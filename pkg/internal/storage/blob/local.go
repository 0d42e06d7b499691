package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khosokawa0716/family-album/pkg/configs"
)

// Local 本地文件系统后端。photos/ 前缀落在原图目录，thumbnails/ 前缀落在缩略图目录，
// 对应原始部署的 /mnt/photos 与 /mnt/photos/thumbnails 布局.
type Local struct {
	photosDir string
	thumbsDir string
}

// NewLocal 创建本地后端，按需建目录.
func NewLocal(cfg *configs.StorageConfig) (*Local, error) {
	l := &Local{
		photosDir: cfg.PhotosPath,
		thumbsDir: cfg.ThumbnailsPath,
	}

	if cfg.AutoCreateDirs {
		for _, dir := range []string{l.photosDir, l.thumbsDir} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
			}
		}
	}

	return l, nil
}

// resolve 把 key 映射到磁盘路径，拒绝目录穿越.
func (l *Local) resolve(key string) (string, error) {
	prefix, rest, ok := strings.Cut(key, "/")
	if !ok || rest == "" {
		return "", fmt.Errorf("invalid blob key: %q", key)
	}

	var root string

	switch prefix {
	case "photos":
		root = l.photosDir
	case "thumbnails":
		root = l.thumbsDir
	default:
		return "", fmt.Errorf("unknown blob key prefix: %q", prefix)
	}

	clean := filepath.Clean(rest)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob key: %q", key)
	}

	return filepath.Join(root, clean), nil
}

// Write 完整写入一个文件，先写临时文件再改名，避免半写文件可见.
func (l *Local) Write(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	path, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return err
	}

	_, copyErr := io.Copy(tmp, r)

	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmp.Name())

		if copyErr != nil {
			return copyErr
		}

		return closeErr
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())

		return err
	}

	return nil
}

// Read 打开文件读取流.
func (l *Local) Read(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := l.resolve(key)
	if err != nil {
		return nil, err
	}

	return os.Open(path)
}

// Delete 删除文件，不存在视为成功.
func (l *Local) Delete(ctx context.Context, key string) error {
	path, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

// Exists 文件是否存在.
func (l *Local) Exists(ctx context.Context, key string) (bool, error) {
	path, err := l.resolve(key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
