// Package blob 抽象照片字节的持久化后端。key 形如 "photos/<family_id>/<name>" 或
// "thumbnails/<family_id>/<name>"，由 service 层构造.
package blob

import (
	"context"
	"io"
)

// Store 字节存储接口。写入在事务提交前完成，失败时由调用方做补偿删除.
type Store interface {
	// Write 完整写入一个对象.
	Write(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Read 打开对象读取流，调用方负责 Close.
	Read(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete 删除对象。对不存在的对象幂等返回 nil.
	Delete(ctx context.Context, key string) error
	// Exists 对象是否存在.
	Exists(ctx context.Context, key string) (bool, error)
}
