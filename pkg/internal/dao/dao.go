// Package dao 封装数据库访问。所有查询都以 family_id 为必选参数，
// 从类型层面杜绝跨家族的数据泄漏；不带家族条件的全局查询不提供.
package dao

import (
	"gorm.io/gorm"
)

// Repo 泛型基础仓库.
type Repo[T any] struct {
	DB *gorm.DB
}

// NewRepo 创建基础仓库.
func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{DB: db}
}
