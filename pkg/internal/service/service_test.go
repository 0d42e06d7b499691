package service_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/khosokawa0716/family-album/pkg/configs"
	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/storage"
	"github.com/khosokawa0716/family-album/pkg/internal/storage/blob"
	"github.com/khosokawa0716/family-album/pkg/internal/storage/db"
)

// newTestEnv 搭建隔离的测试环境：sqlite 临时库 + 本地临时目录字节后端.
func newTestEnv(t *testing.T) (context.Context, *storage.Manager) {
	t.Helper()

	tmp := t.TempDir()

	if err := configs.InitConfig(tmp); err != nil {
		t.Fatalf("init config: %v", err)
	}

	cfg := configs.GetConfig()
	cfg.DB.Type = configs.SQLite
	cfg.DB.Database = filepath.Join(tmp, "album")
	cfg.Storage.Type = configs.StorageLocal
	cfg.Storage.PhotosPath = filepath.Join(tmp, "photos")
	cfg.Storage.ThumbnailsPath = filepath.Join(tmp, "thumbnails")
	cfg.Storage.AutoCreateDirs = true
	cfg.Log.EnableFile = false
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.OwnerDelete = true

	client, err := db.New(context.Background(), &cfg.DB)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := client.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store, err := blob.NewLocal(&cfg.Storage)
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}

	mgr := &storage.Manager{DB: client, Blob: store}

	return ctxPkg.WithStorageManager(context.Background(), mgr), mgr
}

// seedUser 写入一个测试用户，密码固定为 password123.
func seedUser(t *testing.T, mgr *storage.Manager, name string, familyID uint, role model.Role) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	u := &model.User{
		UserName: name,
		Password: string(hash),
		Role:     role,
		FamilyID: familyID,
		Status:   1,
	}
	if err := mgr.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}

	return u
}

// as 返回携带指定用户身份的上下文.
func as(ctx context.Context, u *model.User) context.Context {
	return ctxPkg.WithIdentity(ctx, guard.IdentityOf(u))
}

// jpegFile 生成一个可上传的测试JPEG文件.
func jpegFile(t *testing.T, name string, w, h int) service.UploadFile {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	return service.UploadFile{
		Name:        name,
		Size:        int64(buf.Len()),
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}
}

// corruptFile 声称是JPEG但内容无法解码.
func corruptFile(name string) service.UploadFile {
	data := []byte("definitely not a jpeg")

	return service.UploadFile{
		Name:        name,
		Size:        int64(len(data)),
		ContentType: "image/jpeg",
		Data:        data,
	}
}

// countPictures 数据库中的照片行数.
func countPictures(t *testing.T, mgr *storage.Manager) int64 {
	t.Helper()

	var n int64
	if err := mgr.DB.Model(&model.Picture{}).Count(&n).Error; err != nil {
		t.Fatalf("count pictures: %v", err)
	}

	return n
}
