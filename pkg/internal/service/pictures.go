package service

import (
	"context"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/dao"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// PictureService 照片摄取与生命周期业务.
type PictureService struct {
	base
	pictures   *dao.Pictures
	categories *dao.Categories
	comments   *dao.Comments
}

// NewPictureService 创建照片服务，资源句柄来自请求上下文.
func NewPictureService(ctx context.Context) *PictureService {
	b := newBase(ctx)

	return &PictureService{
		base:       b,
		pictures:   dao.NewPictures(b.db.DB),
		categories: dao.NewCategories(b.db.DB),
		comments:   dao.NewComments(b.db.DB),
	}
}

// GetPicture 返回家族内单张有效照片.
func (s *PictureService) GetPicture(ctx context.Context, pictureID uint) (*types.PictureResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.Authorize(id, guard.ActionRead, guard.Resource{FamilyID: id.FamilyID}); err != nil {
		return nil, err
	}

	pic, err := s.pictures.GetActiveByID(ctx, id.FamilyID, pictureID)
	if err != nil {
		return nil, mapDBErr(err, "picture")
	}

	resp := s.toPictureResponse(pic)

	return &resp, nil
}

// GetGroup 返回一次上传的整组有效照片，组内按提交顺序.
func (s *PictureService) GetGroup(ctx context.Context, groupID string) (*types.PictureGroupResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.Authorize(id, guard.ActionRead, guard.Resource{FamilyID: id.FamilyID}); err != nil {
		return nil, err
	}

	rows, err := s.pictures.ListByGroup(ctx, id.FamilyID, groupID, model.StatusActive)
	if err != nil {
		return nil, mapDBErr(err, "picture group")
	}

	if len(rows) == 0 {
		return nil, apperr.NotFound("picture group not found")
	}

	resp := types.PictureGroupResponse{GroupID: groupID}
	for i := range rows {
		resp.Pictures = append(resp.Pictures, s.toPictureResponse(&rows[i]))
	}

	return &resp, nil
}
