package model

import "time"

// Comment 照片评论，软删除；所属照片软删除时在同一事务内级联标记删除.
type Comment struct {
	ID        uint   `gorm:"primaryKey"        json:"id"`
	PictureID uint   `gorm:"not null;index"    json:"picture_id"`
	UserID    uint   `gorm:"not null;index"    json:"user_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	// IsDeleted 0=有效 1=已删除.
	IsDeleted  int8      `gorm:"not null;default:0;index" json:"-"`
	CreateDate time.Time `gorm:"autoCreateTime"           json:"create_date"`
	UpdateDate time.Time `gorm:"autoUpdateTime"           json:"update_date"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 指定表名.
func (Comment) TableName() string { return "comments" }
