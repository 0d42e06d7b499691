package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/dao"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// CategoryService 分类管理业务。读取对全员开放，变更仅限管理员.
type CategoryService struct {
	base
	categories *dao.Categories
	pictures   *dao.Pictures
}

// NewCategoryService 创建分类服务.
func NewCategoryService(ctx context.Context) *CategoryService {
	b := newBase(ctx)

	return &CategoryService{
		base:       b,
		categories: dao.NewCategories(b.db.DB),
		pictures:   dao.NewPictures(b.db.DB),
	}
}

// List 家族内有效分类.
func (s *CategoryService) List(ctx context.Context) ([]types.CategoryResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.Authorize(id, guard.ActionRead, guard.Resource{FamilyID: id.FamilyID}); err != nil {
		return nil, err
	}

	rows, err := s.categories.ListActive(ctx, id.FamilyID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "list categories", err)
	}

	resp := make([]types.CategoryResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, toCategoryResponse(&rows[i]))
	}

	return resp, nil
}

// Create 新建分类，家族内名称唯一（仅对有效分类判重）.
func (s *CategoryService) Create(ctx context.Context, req types.CategoryRequest) (*types.CategoryResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.RequireAdmin(id); err != nil {
		return nil, err
	}

	exists, err := s.categories.ExistsActiveName(ctx, id.FamilyID, req.Name)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "check category name", err)
	}

	if exists {
		return nil, apperr.Conflict("category name already exists")
	}

	cat := &model.Category{
		FamilyID:    id.FamilyID,
		Name:        req.Name,
		Description: req.Description,
		Status:      1,
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "create category", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "category_create", fmt.Sprintf("category=%d", cat.ID))

	resp := toCategoryResponse(cat)

	return &resp, nil
}

// Update 编辑分类名称与描述.
func (s *CategoryService) Update(ctx context.Context, categoryID uint, req types.CategoryRequest) (*types.CategoryResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.RequireAdmin(id); err != nil {
		return nil, err
	}

	cat, err := s.categories.GetActiveByID(ctx, id.FamilyID, categoryID)
	if err != nil {
		return nil, mapDBErr(err, "category")
	}

	if req.Name != cat.Name {
		exists, err := s.categories.ExistsActiveName(ctx, id.FamilyID, req.Name)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindStorage, "check category name", err)
		}

		if exists {
			return nil, apperr.Conflict("category name already exists")
		}
	}

	if err := s.db.WithContext(ctx).Model(cat).
		Updates(map[string]any{"name": req.Name, "description": req.Description}).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "update category", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "category_update", fmt.Sprintf("category=%d", cat.ID))

	resp := toCategoryResponse(cat)

	return &resp, nil
}

// Delete 软删除分类。引用它的照片在同一事务内把 category_id 置空，照片本身不动.
func (s *CategoryService) Delete(ctx context.Context, categoryID uint) error {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.RequireAdmin(id); err != nil {
		return err
	}

	cat, err := s.categories.GetActiveByID(ctx, id.FamilyID, categoryID)
	if err != nil {
		return mapDBErr(err, "category")
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Category{}).
			Where("id = ?", cat.ID).
			Update("status", 0).Error; err != nil {
			return err
		}

		return s.pictures.NullifyCategory(tx, id.FamilyID, cat.ID)
	}); err != nil {
		return apperr.Wrap(apperr.KindStorage, "delete category", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "category_delete", fmt.Sprintf("category=%d", cat.ID))

	return nil
}

func toCategoryResponse(c *model.Category) types.CategoryResponse {
	return types.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreateDate:  c.CreateDate,
	}
}
