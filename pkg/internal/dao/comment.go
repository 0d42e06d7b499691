package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/khosokawa0716/family-album/pkg/internal/model"
)

// Comments 评论仓库。家族范围经由所属照片校验，仓库方法都要求先给出照片.
type Comments struct {
	Repo[model.Comment]
}

// NewComments 创建评论仓库.
func NewComments(db *gorm.DB) *Comments {
	return &Comments{Repo: NewRepo[model.Comment](db)}
}

// ListByPicture 照片下的有效评论，按创建时间升序，预载用户名.
func (c *Comments) ListByPicture(ctx context.Context, pictureID uint) ([]model.Comment, error) {
	var rows []model.Comment
	if err := c.DB.WithContext(ctx).
		Preload("User").
		Where("picture_id = ? AND is_deleted = 0", pictureID).
		Order("create_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// GetActiveByID 取有效评论，附带家族校验（经照片联表）.
func (c *Comments) GetActiveByID(ctx context.Context, familyID, commentID uint) (*model.Comment, error) {
	var cm model.Comment
	if err := c.DB.WithContext(ctx).
		Preload("User").
		Joins("JOIN pictures ON pictures.id = comments.picture_id").
		Where("comments.id = ? AND comments.is_deleted = 0 AND pictures.family_id = ?", commentID, familyID).
		First(&cm).Error; err != nil {
		return nil, err
	}

	return &cm, nil
}

// Create 新建评论.
func (c *Comments) Create(ctx context.Context, cm *model.Comment) error {
	return c.DB.WithContext(ctx).Create(cm).Error
}

// SoftDeleteByPicture 照片软删除时级联标记其评论，在调用方事务内执行.
func (c *Comments) SoftDeleteByPicture(tx *gorm.DB, pictureID uint) error {
	return tx.Model(&model.Comment{}).
		Where("picture_id = ? AND is_deleted = 0", pictureID).
		Update("is_deleted", 1).Error
}
