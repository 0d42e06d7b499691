package service

import (
	"context"
	"fmt"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/dao"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// CommentService 照片评论业务。评论的家族范围经由所属照片校验.
type CommentService struct {
	base
	comments *dao.Comments
	pictures *dao.Pictures
}

// NewCommentService 创建评论服务.
func NewCommentService(ctx context.Context) *CommentService {
	b := newBase(ctx)

	return &CommentService{
		base:     b,
		comments: dao.NewComments(b.db.DB),
		pictures: dao.NewPictures(b.db.DB),
	}
}

// ListByPicture 照片下的有效评论.
func (s *CommentService) ListByPicture(ctx context.Context, pictureID uint) ([]types.CommentResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.Authorize(id, guard.ActionRead, guard.Resource{FamilyID: id.FamilyID}); err != nil {
		return nil, err
	}

	if _, err := s.pictures.GetActiveByID(ctx, id.FamilyID, pictureID); err != nil {
		return nil, mapDBErr(err, "picture")
	}

	rows, err := s.comments.ListByPicture(ctx, pictureID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "list comments", err)
	}

	resp := make([]types.CommentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, toCommentResponse(&rows[i]))
	}

	return resp, nil
}

// Create 对有效照片发表评论.
func (s *CommentService) Create(ctx context.Context, pictureID uint, req types.CommentRequest) (*types.CommentResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.Authorize(id, guard.ActionRead, guard.Resource{FamilyID: id.FamilyID}); err != nil {
		return nil, err
	}

	if _, err := s.pictures.GetActiveByID(ctx, id.FamilyID, pictureID); err != nil {
		return nil, mapDBErr(err, "picture")
	}

	cm := &model.Comment{
		PictureID: pictureID,
		UserID:    id.UserID,
		Content:   req.Content,
	}
	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "create comment", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "comment_create", fmt.Sprintf("picture=%d comment=%d", pictureID, cm.ID))

	// 重读以预载作者用户名
	if loaded, err := s.comments.GetActiveByID(ctx, id.FamilyID, cm.ID); err == nil {
		cm = loaded
	}

	resp := toCommentResponse(cm)

	return &resp, nil
}

// Update 编辑评论内容，作者本人或管理员.
func (s *CommentService) Update(ctx context.Context, commentID uint, req types.CommentRequest) (*types.CommentResponse, error) {
	id := ctxPkg.GetIdentity(ctx)

	cm, err := s.comments.GetActiveByID(ctx, id.FamilyID, commentID)
	if err != nil {
		return nil, mapDBErr(err, "comment")
	}

	if err := guard.Authorize(id, guard.ActionMutate, guard.Resource{FamilyID: id.FamilyID, OwnerID: cm.UserID}); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(cm).Update("content", req.Content).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "update comment", err)
	}

	resp := toCommentResponse(cm)

	return &resp, nil
}

// Delete 软删除评论，作者本人或管理员.
func (s *CommentService) Delete(ctx context.Context, commentID uint) error {
	id := ctxPkg.GetIdentity(ctx)

	cm, err := s.comments.GetActiveByID(ctx, id.FamilyID, commentID)
	if err != nil {
		return mapDBErr(err, "comment")
	}

	if err := guard.Authorize(id, guard.ActionMutate, guard.Resource{FamilyID: id.FamilyID, OwnerID: cm.UserID}); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Model(cm).Update("is_deleted", 1).Error; err != nil {
		return apperr.Wrap(apperr.KindStorage, "delete comment", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "comment_delete", fmt.Sprintf("comment=%d", cm.ID))

	return nil
}

func toCommentResponse(c *model.Comment) types.CommentResponse {
	return types.CommentResponse{
		ID:         c.ID,
		PictureID:  c.PictureID,
		UserID:     c.UserID,
		UserName:   c.User.UserName,
		Content:    c.Content,
		CreateDate: c.CreateDate,
		UpdateDate: c.UpdateDate,
	}
}
