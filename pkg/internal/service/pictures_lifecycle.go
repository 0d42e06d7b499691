package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	nlog "github.com/khosokawa0716/family-album/pkg/log"
	"github.com/khosokawa0716/family-album/pkg/metrics"
)

// SoftDelete 软删除照片：Active→Deleted，字节保留，评论在同一事务内级联标记删除.
// owner_delete 配置决定上传者本人能否删除，关闭时仅管理员可删.
func (s *PictureService) SoftDelete(ctx context.Context, pictureID uint) error {
	id := ctxPkg.GetIdentity(ctx)

	pic, err := s.pictures.GetByID(ctx, id.FamilyID, pictureID)
	if err != nil {
		return mapDBErr(err, "picture")
	}

	action := guard.ActionAdmin
	if s.cfg.Auth.OwnerDelete {
		action = guard.ActionMutate
	}

	if err := guard.Authorize(id, action, guard.Resource{FamilyID: pic.FamilyID, OwnerID: pic.UploadedBy}); err != nil {
		return err
	}

	if !pic.Status.CanTransition(model.StatusDeleted) {
		return apperr.Newf(apperr.KindInvalidState,
			"cannot delete picture in %s state", pic.Status)
	}

	now := time.Now()

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Picture{}).
			Where("id = ? AND status = ?", pic.ID, model.StatusActive).
			Updates(map[string]any{"status": model.StatusDeleted, "deleted_at": now}).Error; err != nil {
			return err
		}

		return s.comments.SoftDeleteByPicture(tx, pic.ID)
	}); err != nil {
		return apperr.Wrap(apperr.KindStorage, "soft delete picture", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "delete", fmt.Sprintf("picture=%d", pic.ID))

	return nil
}

// Restore 恢复软删除的照片：Deleted→Active。Purged 不可恢复.
func (s *PictureService) Restore(ctx context.Context, pictureID uint) error {
	id := ctxPkg.GetIdentity(ctx)

	pic, err := s.pictures.GetByID(ctx, id.FamilyID, pictureID)
	if err != nil {
		return mapDBErr(err, "picture")
	}

	if err := guard.Authorize(id, guard.ActionAdmin, guard.Resource{FamilyID: pic.FamilyID}); err != nil {
		return err
	}

	if !pic.Status.CanTransition(model.StatusActive) {
		return apperr.Newf(apperr.KindInvalidState,
			"cannot restore picture in %s state", pic.Status)
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Picture{}).
			Where("id = ? AND status = ?", pic.ID, model.StatusDeleted).
			Updates(map[string]any{"status": model.StatusActive, "deleted_at": nil}).Error
	}); err != nil {
		return apperr.Wrap(apperr.KindStorage, "restore picture", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "restore", fmt.Sprintf("picture=%d", pic.ID))

	return nil
}

// Purge 彻底清除：Deleted→Purged，终态。行先提交为 Purged，随后删除字节；
// 字节删除失败只告警，残留对象不再被任何行引用，可由巡检清理.
func (s *PictureService) Purge(ctx context.Context, pictureID uint) error {
	id := ctxPkg.GetIdentity(ctx)

	pic, err := s.pictures.GetByID(ctx, id.FamilyID, pictureID)
	if err != nil {
		return mapDBErr(err, "picture")
	}

	if err := guard.Authorize(id, guard.ActionAdmin, guard.Resource{FamilyID: pic.FamilyID}); err != nil {
		return err
	}

	if !pic.Status.CanTransition(model.StatusPurged) {
		return apperr.Newf(apperr.KindInvalidState,
			"cannot purge picture in %s state", pic.Status)
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Picture{}).
			Where("id = ? AND status = ?", pic.ID, model.StatusDeleted).
			Update("status", model.StatusPurged).Error
	}); err != nil {
		return apperr.Wrap(apperr.KindStorage, "purge picture", err)
	}

	for _, key := range []string{pic.FilePath, pic.ThumbPath} {
		if err := s.blob.Delete(ctx, key); err != nil {
			nlog.Logger().Warn().Err(err).Str("key", key).Msg("purge blob delete failed")
		}
	}

	metrics.PurgedPictures.Inc()
	s.record(ctx, id.FamilyID, id.UserID, "purge", fmt.Sprintf("picture=%d", pic.ID))

	return nil
}
