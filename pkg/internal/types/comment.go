package types

import "time"

// CommentRequest 发表/编辑评论.
type CommentRequest struct {
	Content string `json:"content" rule:"required,max=500"`
}

// CommentResponse 评论信息.
type CommentResponse struct {
	ID         uint      `json:"id"`
	PictureID  uint      `json:"picture_id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name"`
	Content    string    `json:"content"`
	CreateDate time.Time `json:"create_date"`
	UpdateDate time.Time `json:"update_date"`
}
