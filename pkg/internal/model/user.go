// Package model 定义家庭相册的数据库模型.
package model

import "time"

// Role 用户角色，封闭集合.
type Role int8

const (
	// RoleGeneral 普通家庭成员.
	RoleGeneral Role = 0
	// RoleAdmin 管理员，数值沿用旧库的 type=10.
	RoleAdmin Role = 10
)

// String 返回角色的字符串表示.
func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}

	return "general"
}

// User 家庭成员账号，恰好属于一个 Family.
type User struct {
	ID       uint   `gorm:"primaryKey"                   json:"id"`
	UserName string `gorm:"size:64;not null;uniqueIndex" json:"user_name"`
	Password string `gorm:"size:255;not null"            json:"-"`
	Email    string `gorm:"size:255"                     json:"email,omitempty"`
	Role     Role   `gorm:"column:type;not null"         json:"type"`
	FamilyID uint   `gorm:"not null;index"               json:"family_id"`
	// Status 1=有效 0=停用.
	Status     int8      `gorm:"not null;default:1" json:"status"`
	CreateDate time.Time `gorm:"autoCreateTime"     json:"create_date"`
	UpdateDate time.Time `gorm:"autoUpdateTime"     json:"update_date"`
}

// TableName 指定表名.
func (User) TableName() string { return "users" }

// IsActive 账号是否有效.
func (u *User) IsActive() bool { return u.Status == 1 }

// IsAdmin 是否管理员.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
