package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/khosokawa0716/family-album/pkg/internal/model"
)

// Categories 分类仓库.
type Categories struct {
	Repo[model.Category]
}

// NewCategories 创建分类仓库.
func NewCategories(db *gorm.DB) *Categories {
	return &Categories{Repo: NewRepo[model.Category](db)}
}

// ListActive 家族内有效分类，按创建时间升序.
func (c *Categories) ListActive(ctx context.Context, familyID uint) ([]model.Category, error) {
	var rows []model.Category
	if err := c.DB.WithContext(ctx).
		Where("family_id = ? AND status = 1", familyID).
		Order("create_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// GetActiveByID 按ID取有效分类.
func (c *Categories) GetActiveByID(ctx context.Context, familyID, id uint) (*model.Category, error) {
	var cat model.Category
	if err := c.DB.WithContext(ctx).
		Where("family_id = ? AND id = ? AND status = 1", familyID, id).
		First(&cat).Error; err != nil {
		return nil, err
	}

	return &cat, nil
}

// ExistsActiveName 家族内是否已有同名有效分类.
func (c *Categories) ExistsActiveName(ctx context.Context, familyID uint, name string) (bool, error) {
	var count int64
	if err := c.DB.WithContext(ctx).Model(&model.Category{}).
		Where("family_id = ? AND name = ? AND status = 1", familyID, name).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create 新建分类.
func (c *Categories) Create(ctx context.Context, cat *model.Category) error {
	return c.DB.WithContext(ctx).Create(cat).Error
}
