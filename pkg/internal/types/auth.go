package types

// LoginRequest 登录请求.
type LoginRequest struct {
	UserName string `json:"user_name" rule:"required,max=50"`
	Password string `json:"password" rule:"required,max=128"`
}

// LoginResponse 登录成功返回的令牌.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse 用户信息.
type UserResponse struct {
	ID       uint   `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Type     int8   `json:"type"`
	FamilyID uint   `json:"family_id"`
	Status   int8   `json:"status"`
}

// CreateUserRequest 管理员创建家族成员.
type CreateUserRequest struct {
	UserName string `json:"user_name" rule:"required,max=50"`
	Password string `json:"password" rule:"required,min=8,max=128"`
	Email    string `json:"email" rule:"omitempty,email"`
	Type     int8   `json:"type" rule:"omitempty,oneof=0 10"`
}

// UpdateUserRequest 编辑成员。Email/Password 本人或管理员可改，
// Type/Status 仅管理员可改。指针字段缺省表示不修改.
type UpdateUserRequest struct {
	Email    *string `json:"email" rule:"omitempty,email"`
	Password *string `json:"password" rule:"omitempty,min=8,max=128"`
	Type     *int8   `json:"type" rule:"omitempty,oneof=0 10"`
	Status   *int8   `json:"status" rule:"omitempty,oneof=0 1"`
}
