package types

import "time"

// UploadMetaRequest 上传批次共享的元数据，随 multipart 表单一起提交.
type UploadMetaRequest struct {
	Title       string `form:"title" rule:"max=100"`
	Description string `form:"description" rule:"max=1000"`
	CategoryID  *uint  `form:"category_id"`
	TakenDate   string `form:"taken_date"` // RFC3339 或 2006-01-02
}

// PictureResponse 单张照片.
type PictureResponse struct {
	ID          uint       `json:"id"`
	GroupID     string     `json:"group_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CategoryID  *uint      `json:"category_id"`
	FilePath    string     `json:"file_path"`
	ThumbPath   string     `json:"thumbnail_path"`
	FileSize    int64      `json:"file_size"`
	MimeType    string     `json:"mime_type"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	TakenDate   *time.Time `json:"taken_date"`
	UploadedBy  uint       `json:"uploaded_by"`
	Status      int8       `json:"status"`
	CreateDate  time.Time  `json:"create_date"`
	UpdateDate  time.Time  `json:"update_date"`
}

// UploadResponse 上传结果，照片顺序与提交顺序一致.
type UploadResponse struct {
	GroupID  string            `json:"group_id"`
	Pictures []PictureResponse `json:"pictures"`
}

// PictureGroupResponse 一组照片，组内按提交顺序排列.
type PictureGroupResponse struct {
	GroupID  string            `json:"group_id"`
	Pictures []PictureResponse `json:"pictures"`
}

// ListPicturesResponse 照片列表，按组分块返回.
type ListPicturesResponse struct {
	Groups     []PictureGroupResponse `json:"groups"`
	Pagination Pagination             `json:"pagination"`
}

// ListPicturesQuery 列表过滤参数.
type ListPicturesQuery struct {
	// Category 单个ID或逗号分隔的多个ID（OR）
	Category string `form:"category"`
	// CategoryAnd 逗号分隔的多个ID（AND）
	CategoryAnd string `form:"category_and"`
	Year        int    `form:"year" rule:"omitempty,gte=1970,lte=2100"`
	Month       int    `form:"month" rule:"omitempty,gte=1,lte=12"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Limit       int    `form:"limit" rule:"omitempty,gte=1"`
	Offset      int    `form:"offset" rule:"omitempty,gte=0"`
}

// UpdatePictureRequest 组共享元数据编辑。指针字段缺省表示不修改.
type UpdatePictureRequest struct {
	Title       *string `json:"title" rule:"omitempty,max=100"`
	Description *string `json:"description" rule:"omitempty,max=1000"`
	CategoryID  *uint   `json:"category_id"`
	TakenDate   *string `json:"taken_date"`
}
