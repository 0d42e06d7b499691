package dao

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/khosokawa0716/family-album/pkg/internal/model"
)

// Pictures 照片仓库.
type Pictures struct {
	Repo[model.Picture]
}

// NewPictures 创建照片仓库.
func NewPictures(db *gorm.DB) *Pictures {
	return &Pictures{Repo: NewRepo[model.Picture](db)}
}

// PictureFilter 列表过滤条件.
type PictureFilter struct {
	// CategoryIDs OR 语义：命中任一分类即可.
	CategoryIDs []uint
	// CategoryAnd AND 语义：必须同时命中所有列出的分类.
	CategoryAnd []uint
	// Year/Month 按拍摄时间过滤；Month 仅在 Year 存在时有效.
	Year  int
	Month int
	// StartDate/EndDate 拍摄日期闭区间.
	StartDate *time.Time
	EndDate   *time.Time
}

// scoped 每条查询的公共前缀：家族 + 状态.
func (p *Pictures) scoped(ctx context.Context, familyID uint, status model.PictureStatus) *gorm.DB {
	return p.DB.WithContext(ctx).Model(&model.Picture{}).
		Where("family_id = ? AND status = ?", familyID, status)
}

// applyFilter 将过滤条件拼到查询上.
func (p *Pictures) applyFilter(q *gorm.DB, familyID uint, status model.PictureStatus, f PictureFilter) *gorm.DB {
	if len(f.CategoryIDs) > 0 {
		q = q.Where("category_id IN ?", f.CategoryIDs)
	}

	// AND 检索沿用原实现的子查询叠加方式
	for _, cid := range f.CategoryAnd {
		sub := p.DB.Model(&model.Picture{}).Select("id").
			Where("family_id = ? AND status = ? AND category_id = ?", familyID, status, cid)
		q = q.Where("id IN (?)", sub)
	}

	if f.Year > 0 {
		start := time.Date(f.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)

		if f.Month >= 1 && f.Month <= 12 {
			start = time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
			end = start.AddDate(0, 1, 0)
		}

		q = q.Where("taken_date >= ? AND taken_date < ?", start, end)
	}

	if f.StartDate != nil {
		q = q.Where("taken_date >= ?", *f.StartDate)
	}

	if f.EndDate != nil {
		// 终止日包含当天整天
		q = q.Where("taken_date <= ?", f.EndDate.Add(24*time.Hour-time.Second))
	}

	return q
}

// List 返回过滤后的单张照片分页与总数。排序固定 create_date DESC, id DESC 保证分页确定性.
func (p *Pictures) List(ctx context.Context, familyID uint, status model.PictureStatus,
	f PictureFilter, limit, offset int,
) ([]model.Picture, int64, error) {
	q := p.applyFilter(p.scoped(ctx, familyID, status), familyID, status, f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Picture
	if err := q.Order("create_date DESC, id DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// GetByID 按ID取单行（家族内，任意状态），供生命周期操作检查当前状态.
func (p *Pictures) GetByID(ctx context.Context, familyID, id uint) (*model.Picture, error) {
	var pic model.Picture
	if err := p.DB.WithContext(ctx).
		Where("family_id = ? AND id = ?", familyID, id).
		First(&pic).Error; err != nil {
		return nil, err
	}

	return &pic, nil
}

// GetActiveByID 按ID取有效照片.
func (p *Pictures) GetActiveByID(ctx context.Context, familyID, id uint) (*model.Picture, error) {
	var pic model.Picture
	if err := p.DB.WithContext(ctx).
		Where("family_id = ? AND id = ? AND status = ?", familyID, id, model.StatusActive).
		First(&pic).Error; err != nil {
		return nil, err
	}

	return &pic, nil
}

// ListByGroup 返回组内照片（按ID升序，即提交顺序）.
func (p *Pictures) ListByGroup(ctx context.Context, familyID uint, groupID string,
	status model.PictureStatus,
) ([]model.Picture, error) {
	var rows []model.Picture
	if err := p.DB.WithContext(ctx).
		Where("family_id = ? AND group_id = ? AND status = ?", familyID, groupID, status).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// UpdateGroupMeta 组内全员更新共享元数据，在调用方事务内执行.
func (p *Pictures) UpdateGroupMeta(tx *gorm.DB, familyID uint, groupID string, updates map[string]any) error {
	return tx.Model(&model.Picture{}).
		Where("family_id = ? AND group_id = ? AND status = ?", familyID, groupID, model.StatusActive).
		Updates(updates).Error
}

// NullifyCategory 分类被删除时，把引用它的照片 category_id 置空（不删除照片）.
// 在调用方事务内执行.
func (p *Pictures) NullifyCategory(tx *gorm.DB, familyID, categoryID uint) error {
	return tx.Model(&model.Picture{}).
		Where("family_id = ? AND category_id = ?", familyID, categoryID).
		Update("category_id", nil).Error
}
