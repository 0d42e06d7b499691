package service_test

import (
	"context"
	"testing"

	"github.com/khosokawa0716/family-album/pkg/configs"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// uploadOne 上传一张照片并返回其ID.
func uploadOne(t *testing.T, ctx context.Context, svc *service.PictureService) uint {
	t.Helper()

	resp, err := svc.Upload(ctx, types.UploadMetaRequest{}, []service.UploadFile{
		jpegFile(t, "p.jpg", 200, 150),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	return resp.Pictures[0].ID
}

// TestSoftDeleteCascadesComments 软删除照片时评论在同一事务内级联删除，
// 同组其他照片不受影响.
func TestSoftDeleteCascadesComments(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	svc := service.NewPictureService(ctx)
	ownerCtx := as(ctx, owner)

	batch, err := svc.Upload(ownerCtx, types.UploadMetaRequest{}, []service.UploadFile{
		jpegFile(t, "a.jpg", 200, 150),
		jpegFile(t, "b.jpg", 200, 150),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	picID := batch.Pictures[0].ID
	siblingID := batch.Pictures[1].ID

	cmts := service.NewCommentService(ctx)
	if _, err := cmts.Create(ownerCtx, picID, types.CommentRequest{Content: "いいね"}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := svc.SoftDelete(ownerCtx, picID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	var pic model.Picture
	if err := mgr.DB.First(&pic, picID).Error; err != nil {
		t.Fatalf("reload picture: %v", err)
	}

	if pic.Status != model.StatusDeleted {
		t.Errorf("status: got %s, want deleted", pic.Status)
	}

	if pic.DeletedAt == nil {
		t.Error("deleted_at should be set")
	}

	var live int64
	mgr.DB.Model(&model.Comment{}).Where("picture_id = ? AND is_deleted = 0", picID).Count(&live)

	if live != 0 {
		t.Errorf("comments should be cascaded, %d still live", live)
	}

	var sibling model.Picture
	mgr.DB.First(&sibling, siblingID)

	if sibling.Status != model.StatusActive {
		t.Errorf("group sibling should stay active, got %s", sibling.Status)
	}
}

// TestSoftDeletePermissions owner_delete 开启时非属主成员仍被拒.
func TestSoftDeletePermissions(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	other := seedUser(t, mgr, "bob", 1, model.RoleGeneral)
	admin := seedUser(t, mgr, "carol", 1, model.RoleAdmin)

	svc := service.NewPictureService(ctx)
	picID := uploadOne(t, as(ctx, owner), svc)

	if got := apperr.KindOf(svc.SoftDelete(as(ctx, other), picID)); got != apperr.KindForbidden {
		t.Errorf("non-owner member: expected forbidden, got %s", got)
	}

	if err := svc.SoftDelete(as(ctx, admin), picID); err != nil {
		t.Errorf("admin should delete: %v", err)
	}
}

// TestSoftDeleteOwnerDisabled owner_delete 关闭时上传者本人也被拒.
func TestSoftDeleteOwnerDisabled(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	configs.GetConfig().Auth.OwnerDelete = false

	svc := service.NewPictureService(ctx)
	picID := uploadOne(t, as(ctx, owner), svc)

	if got := apperr.KindOf(svc.SoftDelete(as(ctx, owner), picID)); got != apperr.KindForbidden {
		t.Errorf("expected forbidden, got %s", got)
	}
}

// TestCrossFamilyIsMasked 其他家族的照片表现为不存在，而非权限不足.
func TestCrossFamilyIsMasked(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	outsider := seedUser(t, mgr, "mallory", 2, model.RoleAdmin)

	svc := service.NewPictureService(ctx)
	picID := uploadOne(t, as(ctx, owner), svc)

	if got := apperr.KindOf(svc.SoftDelete(as(ctx, outsider), picID)); got != apperr.KindNotFound {
		t.Errorf("delete: expected not found, got %s", got)
	}

	if _, err := svc.GetPicture(as(ctx, outsider), picID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("get: expected not found, got %v", err)
	}
}

// TestRestore 恢复软删除的照片；重复状态迁移被拒.
func TestRestore(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	admin := seedUser(t, mgr, "carol", 1, model.RoleAdmin)

	svc := service.NewPictureService(ctx)
	ownerCtx := as(ctx, owner)
	adminCtx := as(ctx, admin)
	picID := uploadOne(t, ownerCtx, svc)

	// 有效照片不能恢复
	if got := apperr.KindOf(svc.Restore(adminCtx, picID)); got != apperr.KindInvalidState {
		t.Errorf("restore active: expected invalid state, got %s", got)
	}

	if err := svc.SoftDelete(ownerCtx, picID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	// 恢复是管理员操作
	if got := apperr.KindOf(svc.Restore(ownerCtx, picID)); got != apperr.KindForbidden {
		t.Errorf("member restore: expected forbidden, got %s", got)
	}

	if err := svc.Restore(adminCtx, picID); err != nil {
		t.Fatalf("admin restore: %v", err)
	}

	var pic model.Picture
	mgr.DB.First(&pic, picID)

	if pic.Status != model.StatusActive {
		t.Errorf("status: got %s, want active", pic.Status)
	}

	if pic.DeletedAt != nil {
		t.Error("deleted_at should be cleared")
	}
}

// TestPurge 彻底清除：行转终态、字节删除、不可恢复.
func TestPurge(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	admin := seedUser(t, mgr, "carol", 1, model.RoleAdmin)

	svc := service.NewPictureService(ctx)
	ownerCtx := as(ctx, owner)
	adminCtx := as(ctx, admin)
	picID := uploadOne(t, ownerCtx, svc)

	// Active 不能直接清除
	if got := apperr.KindOf(svc.Purge(adminCtx, picID)); got != apperr.KindInvalidState {
		t.Errorf("purge active: expected invalid state, got %s", got)
	}

	if err := svc.SoftDelete(ownerCtx, picID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	// 清除是管理员操作
	if got := apperr.KindOf(svc.Purge(ownerCtx, picID)); got != apperr.KindForbidden {
		t.Errorf("member purge: expected forbidden, got %s", got)
	}

	var pic model.Picture
	mgr.DB.First(&pic, picID)

	if err := svc.Purge(adminCtx, picID); err != nil {
		t.Fatalf("purge: %v", err)
	}

	var after model.Picture
	mgr.DB.First(&after, picID)

	if after.Status != model.StatusPurged {
		t.Errorf("status: got %s, want purged", after.Status)
	}

	for _, key := range []string{pic.FilePath, pic.ThumbPath} {
		exists, err := mgr.Blob.Exists(ctx, key)
		if err != nil {
			t.Fatalf("exists %s: %v", key, err)
		}

		if exists {
			t.Errorf("blob %s should be deleted", key)
		}
	}

	// 终态不可恢复
	if got := apperr.KindOf(svc.Restore(adminCtx, picID)); got != apperr.KindInvalidState {
		t.Errorf("restore purged: expected invalid state, got %s", got)
	}
}
