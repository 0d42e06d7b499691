package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/khosokawa0716/family-album/pkg/internal/model"
)

// Users 用户仓库.
type Users struct {
	Repo[model.User]
}

// NewUsers 创建用户仓库.
func NewUsers(db *gorm.DB) *Users {
	return &Users{Repo: NewRepo[model.User](db)}
}

// GetByID 按ID取用户（登录态解析用，不限家族）.
func (u *Users) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var usr model.User
	if err := u.DB.WithContext(ctx).First(&usr, id).Error; err != nil {
		return nil, err
	}

	return &usr, nil
}

// GetByUserName 按用户名取用户（登录校验用）.
func (u *Users) GetByUserName(ctx context.Context, name string) (*model.User, error) {
	var usr model.User
	if err := u.DB.WithContext(ctx).Where("user_name = ?", name).First(&usr).Error; err != nil {
		return nil, err
	}

	return &usr, nil
}

// ListByFamily 家族内成员列表.
func (u *Users) ListByFamily(ctx context.Context, familyID uint) ([]model.User, error) {
	var rows []model.User
	if err := u.DB.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// GetByFamilyAndID 家族内按ID取用户.
func (u *Users) GetByFamilyAndID(ctx context.Context, familyID, id uint) (*model.User, error) {
	var usr model.User
	if err := u.DB.WithContext(ctx).
		Where("family_id = ? AND id = ?", familyID, id).
		First(&usr).Error; err != nil {
		return nil, err
	}

	return &usr, nil
}

// Create 新建用户.
func (u *Users) Create(ctx context.Context, usr *model.User) error {
	return u.DB.WithContext(ctx).Create(usr).Error
}
