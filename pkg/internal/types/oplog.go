package types

import "time"

// OperationLogResponse 操作日志条目.
type OperationLogResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Operation  string    `json:"operation"`
	Detail     string    `json:"detail"`
	CreateDate time.Time `json:"create_date"`
}
