// Package storage 聚合持久化资源：关系库与照片字节后端.
//
// 初始化
//
//	ctx := context.Background()
//	mgr, err := storage.Init(ctx)
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/khosokawa0716/family-album/pkg/configs"
	"github.com/khosokawa0716/family-album/pkg/internal/storage/blob"
	dbc "github.com/khosokawa0716/family-album/pkg/internal/storage/db"
	nlog "github.com/khosokawa0716/family-album/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	DB   *dbc.Client
	Blob blob.Store
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置。重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		if dbi, e := dbc.New(ctx, &cfg.DB); e != nil {
			err = e

			return
		} else {
			m.DB = dbi
		}

		if bs, e := newBlobStore(ctx, &cfg.Storage); e != nil {
			err = e

			return
		} else {
			m.Blob = bs
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// newBlobStore 按配置选择字节后端.
func newBlobStore(ctx context.Context, cfg *configs.StorageConfig) (blob.Store, error) {
	switch cfg.Type {
	case configs.StorageLocal:
		return blob.NewLocal(cfg)
	case configs.StorageS3:
		return blob.NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetBlobStore 获取字节后端.
func (m *Manager) GetBlobStore() blob.Store {
	return m.Blob
}
