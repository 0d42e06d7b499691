package model

import "time"

// PictureStatus 照片生命周期状态。显式枚举取代旧库的 status 布尔 + 回收站表：
// Purged 是终态，与可恢复的 Deleted 在结构上区分开.
type PictureStatus int8

const (
	// StatusActive 有效.
	StatusActive PictureStatus = 1
	// StatusDeleted 软删除，字节仍保留，可恢复.
	StatusDeleted PictureStatus = 2
	// StatusPurged 已彻底清除，终态，字节已销毁.
	StatusPurged PictureStatus = 3
)

// String 返回状态的字符串表示.
func (s PictureStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusDeleted:
		return "deleted"
	case StatusPurged:
		return "purged"
	default:
		return "unknown"
	}
}

// CanTransition 状态迁移是否合法。允许的迁移：
// Active→Deleted、Deleted→Active（恢复）、Deleted→Purged。Purged 不再离开.
func (s PictureStatus) CanTransition(to PictureStatus) bool {
	switch s {
	case StatusActive:
		return to == StatusDeleted
	case StatusDeleted:
		return to == StatusActive || to == StatusPurged
	default:
		return false
	}
}

// Picture 单张照片的元数据行。同一次上传的多张照片共享 GroupID，
// 标题/描述/分类按组共享，生命周期按行独立.
type Picture struct {
	ID       uint `gorm:"primaryKey"     json:"id"`
	FamilyID uint `gorm:"not null;index" json:"family_id"`
	// UploadedBy 上传者，创建后不变；其 family_id 与本行 FamilyID 恒等.
	UploadedBy uint   `gorm:"not null;index" json:"uploaded_by"`
	GroupID    string `gorm:"size:36;not null;index" json:"group_id"`

	// 组共享的用户元数据
	Title       string `gorm:"size:255"  json:"title"`
	Description string `gorm:"type:text" json:"description"`
	CategoryID  *uint  `gorm:"index"     json:"category_id"`

	// 派生元数据
	FilePath  string     `gorm:"size:512;not null" json:"file_path"`
	ThumbPath string     `gorm:"size:512;not null" json:"thumb_path"`
	FileSize  int64      `gorm:"not null"          json:"file_size"`
	MimeType  string     `gorm:"size:64;not null"  json:"mime_type"`
	Width     int        `gorm:"not null"          json:"width"`
	Height    int        `gorm:"not null"          json:"height"`
	TakenDate *time.Time `gorm:"index"             json:"taken_date"`

	Status     PictureStatus `gorm:"not null;default:1;index" json:"status"`
	CreateDate time.Time     `gorm:"autoCreateTime;index"     json:"create_date"`
	UpdateDate time.Time     `gorm:"autoUpdateTime"           json:"update_date"`
	DeletedAt  *time.Time    `json:"deleted_at,omitempty"`
}

// TableName 指定表名.
func (Picture) TableName() string { return "pictures" }
