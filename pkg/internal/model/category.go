package model

import "time"

// Category 家族内的照片分类，软删除；删除时引用它的照片 category_id 置空而非级联删除.
type Category struct {
	ID          uint   `gorm:"primaryKey"        json:"id"`
	FamilyID    uint   `gorm:"not null;index"    json:"family_id"`
	Name        string `gorm:"size:64;not null"  json:"name"`
	Description string `gorm:"size:255"          json:"description"`
	// Status 1=有效 0=已删除.
	Status     int8      `gorm:"not null;default:1" json:"status"`
	CreateDate time.Time `gorm:"autoCreateTime"     json:"create_date"`
	UpdateDate time.Time `gorm:"autoUpdateTime"     json:"update_date"`
}

// TableName 指定表名.
func (Category) TableName() string { return "categories" }
