package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// UpdateMetadata 编辑组共享元数据（标题/描述/分类/拍摄日期）。
// 经任意一张组内照片发起，变更传播到整组有效照片.
func (s *PictureService) UpdateMetadata(ctx context.Context, pictureID uint,
	req types.UpdatePictureRequest,
) (*types.PictureGroupResponse, error) {
	id := ctxPkg.GetIdentity(ctx)

	pic, err := s.pictures.GetActiveByID(ctx, id.FamilyID, pictureID)
	if err != nil {
		return nil, mapDBErr(err, "picture")
	}

	if err := guard.Authorize(id, guard.ActionMutate, guard.Resource{FamilyID: pic.FamilyID, OwnerID: pic.UploadedBy}); err != nil {
		return nil, err
	}

	updates := map[string]any{}

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.CategoryID != nil {
		if *req.CategoryID == 0 {
			// 0 表示清除分类
			updates["category_id"] = nil
		} else {
			if _, err := s.categories.GetActiveByID(ctx, id.FamilyID, *req.CategoryID); err != nil {
				return nil, apperr.Validation("category not found")
			}

			updates["category_id"] = *req.CategoryID
		}
	}

	if req.TakenDate != nil {
		t, err := parseDate(*req.TakenDate)
		if err != nil {
			return nil, err
		}

		updates["taken_date"] = t
	}

	if len(updates) == 0 {
		return nil, apperr.Validation("no fields to update")
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.pictures.UpdateGroupMeta(tx, id.FamilyID, pic.GroupID, updates)
	}); err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "update picture metadata", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "update", fmt.Sprintf("group=%s", pic.GroupID))

	return s.GetGroup(ctx, pic.GroupID)
}
