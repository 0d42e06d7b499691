package types

import "time"

// CategoryRequest 创建/编辑分类.
type CategoryRequest struct {
	Name        string `json:"name" rule:"required,max=50"`
	Description string `json:"description" rule:"max=200"`
}

// CategoryResponse 分类信息.
type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreateDate  time.Time `json:"create_date"`
}
