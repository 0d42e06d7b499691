// Package context 拓展上下文功能，将存储资源与请求身份集成到上下文中，方便在各层传递.
package context

import (
	"context"

	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/storage"
	"github.com/khosokawa0716/family-album/pkg/internal/storage/blob"
	dbc "github.com/khosokawa0716/family-album/pkg/internal/storage/db"
)

type (
	storageManagerKey struct{}
	identityKey       struct{}
)

// WithStorageManager 将 Manager 存储到 context 中.
func WithStorageManager(ctx context.Context, mgr *storage.Manager) context.Context {
	return context.WithValue(ctx, storageManagerKey{}, mgr)
}

// GetManager 从 context 中获取 Manager.
func GetManager(ctx context.Context) *storage.Manager {
	if mgr, ok := ctx.Value(storageManagerKey{}).(*storage.Manager); ok {
		return mgr
	}

	return nil
}

// GetDBClient 从 context 中获取 DB 客户端.
func GetDBClient(ctx context.Context) *dbc.Client {
	if mgr := GetManager(ctx); mgr != nil {
		return mgr.GetDBClient()
	}

	return nil
}

// GetBlobStore 从 context 中获取字节后端.
func GetBlobStore(ctx context.Context) blob.Store {
	if mgr := GetManager(ctx); mgr != nil {
		return mgr.GetBlobStore()
	}

	return nil
}

// WithIdentity 将认证身份存储到 context 中.
func WithIdentity(ctx context.Context, id guard.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// GetIdentity 从 context 中获取认证身份；未认证时返回零值.
func GetIdentity(ctx context.Context) guard.Identity {
	if id, ok := ctx.Value(identityKey{}).(guard.Identity); ok {
		return id
	}

	return guard.Identity{}
}
