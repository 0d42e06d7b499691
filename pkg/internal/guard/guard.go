// Package guard 集中实现家族范围的访问控制。所有变更操作统一走 Authorize，
// 避免旧实现里散落在各个接口的权限判断.
package guard

import (
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
)

// Identity 已认证的请求方身份.
type Identity struct {
	UserID   uint
	FamilyID uint
	Role     model.Role
	Active   bool
}

// IdentityOf 从用户行构造身份.
func IdentityOf(u *model.User) Identity {
	return Identity{
		UserID:   u.ID,
		FamilyID: u.FamilyID,
		Role:     u.Role,
		Active:   u.IsActive(),
	}
}

// IsAdmin 是否管理员.
func (id Identity) IsAdmin() bool { return id.Role == model.RoleAdmin }

// Action 请求方对资源的操作类别，封闭集合.
type Action int

const (
	// ActionRead 读取/列表，家族内所有成员可用.
	ActionRead Action = iota + 1
	// ActionMutate 变更资源，普通成员仅限自己创建的资源.
	ActionMutate
	// ActionAdmin 管理员专属操作（回收站列表、彻底清除、审计日志等）.
	ActionAdmin
)

// Resource 被访问资源的归属描述.
type Resource struct {
	FamilyID uint
	// OwnerID 资源创建者；家族级资源（如分类列表）可为 0，表示无单一属主.
	OwnerID uint
}

// Authorize 按固定顺序评估访问规则：
//  1. 身份未认证或已停用 → Unauthenticated；
//  2. 跨家族 → NotFound（不向任何角色暴露其他家族资源的存在性）；
//  3. 家族内权限不足 → Forbidden（与第 2 条刻意区分）.
func Authorize(id Identity, action Action, res Resource) error {
	if id.UserID == 0 || !id.Active {
		return apperr.Unauthenticated("authentication required")
	}

	if res.FamilyID != id.FamilyID {
		return apperr.NotFound("resource not found")
	}

	switch action {
	case ActionRead:
		return nil
	case ActionMutate:
		if id.IsAdmin() {
			return nil
		}

		if res.OwnerID != 0 && res.OwnerID == id.UserID {
			return nil
		}

		return apperr.Forbidden("insufficient permission")
	case ActionAdmin:
		if id.IsAdmin() {
			return nil
		}

		return apperr.Forbidden("admin access required")
	default:
		return apperr.Forbidden("unknown action")
	}
}

// RequireAdmin 不针对具体资源的管理员检查（如审计日志列表）.
func RequireAdmin(id Identity) error {
	if id.UserID == 0 || !id.Active {
		return apperr.Unauthenticated("authentication required")
	}

	if !id.IsAdmin() {
		return apperr.Forbidden("admin access required")
	}

	return nil
}
