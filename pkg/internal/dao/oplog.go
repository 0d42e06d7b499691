package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/khosokawa0716/family-album/pkg/internal/model"
)

// OperationLogs 操作日志仓库.
type OperationLogs struct {
	Repo[model.OperationLog]
}

// NewOperationLogs 创建操作日志仓库.
func NewOperationLogs(db *gorm.DB) *OperationLogs {
	return &OperationLogs{Repo: NewRepo[model.OperationLog](db)}
}

// Append 追加一条日志.
func (o *OperationLogs) Append(ctx context.Context, entry *model.OperationLog) error {
	return o.DB.WithContext(ctx).Create(entry).Error
}

// ListByFamily 家族内日志，按创建时间降序.
func (o *OperationLogs) ListByFamily(ctx context.Context, familyID uint) ([]model.OperationLog, error) {
	var rows []model.OperationLog
	if err := o.DB.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("create_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
