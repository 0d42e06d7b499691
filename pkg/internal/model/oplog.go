package model

import "time"

// OperationLog 操作审计日志，管理员可查.
type OperationLog struct {
	ID       uint `gorm:"primaryKey"     json:"id"`
	FamilyID uint `gorm:"not null;index" json:"family_id"`
	UserID   uint `gorm:"not null"       json:"user_id"`
	// Operation 如 upload/delete/restore/purge/category_create.
	Operation  string    `gorm:"size:64;not null" json:"operation"`
	Detail     string    `gorm:"size:512"         json:"detail"`
	CreateDate time.Time `gorm:"autoCreateTime;index" json:"create_date"`
}

// TableName 指定表名.
func (OperationLog) TableName() string { return "operation_logs" }

// AllModels 返回需要迁移的全部模型.
func AllModels() []any {
	return []any{
		&User{},
		&Category{},
		&Picture{},
		&Comment{},
		&OperationLog{},
	}
}
