// Package types 定义 API 的请求与响应结构体.
package types

// Pagination 分页信息，附在列表响应上.
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// MessageResponse 通用提示响应.
type MessageResponse struct {
	Message string `json:"message"`
}
