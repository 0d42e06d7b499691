package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/dao"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// UserService 家族成员管理。创建与列表为管理员专属，
// 编辑按字段区分：资料字段本人可改，角色与状态仅管理员.
type UserService struct {
	base
	users *dao.Users
}

// NewUserService 创建用户服务.
func NewUserService(ctx context.Context) *UserService {
	b := newBase(ctx)

	return &UserService{base: b, users: dao.NewUsers(b.db.DB)}
}

// List 家族成员列表.
func (s *UserService) List(ctx context.Context) ([]types.UserResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.RequireAdmin(id); err != nil {
		return nil, err
	}

	rows, err := s.users.ListByFamily(ctx, id.FamilyID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "list users", err)
	}

	resp := make([]types.UserResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, toUserResponse(&rows[i]))
	}

	return resp, nil
}

// Create 在本家族内创建成员账号.
func (s *UserService) Create(ctx context.Context, req types.CreateUserRequest) (*types.UserResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.RequireAdmin(id); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByUserName(ctx, req.UserName); err == nil {
		return nil, apperr.Conflict("user name already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "hash password", err)
	}

	user := &model.User{
		UserName: req.UserName,
		Password: string(hash),
		Email:    req.Email,
		Role:     model.Role(req.Type),
		FamilyID: id.FamilyID,
		Status:   1,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "create user", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "user_create", fmt.Sprintf("user=%d", user.ID))

	resp := toUserResponse(user)

	return &resp, nil
}

// Update 编辑成员。跨家族目标表现为不存在.
func (s *UserService) Update(ctx context.Context, userID uint, req types.UpdateUserRequest) (*types.UserResponse, error) {
	id := ctxPkg.GetIdentity(ctx)

	target, err := s.users.GetByFamilyAndID(ctx, id.FamilyID, userID)
	if err != nil {
		return nil, mapDBErr(err, "user")
	}

	if err := guard.Authorize(id, guard.ActionMutate, guard.Resource{FamilyID: target.FamilyID, OwnerID: target.ID}); err != nil {
		return nil, err
	}

	// 角色与停用是管理动作
	if req.Type != nil || req.Status != nil {
		if err := guard.RequireAdmin(id); err != nil {
			return nil, err
		}
	}

	updates := map[string]any{}

	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "hash password", err)
		}

		updates["password"] = string(hash)
	}

	if req.Type != nil {
		updates["type"] = *req.Type
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return nil, apperr.Validation("no fields to update")
	}

	if err := s.db.WithContext(ctx).Model(target).Updates(updates).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "update user", err)
	}

	s.record(ctx, id.FamilyID, id.UserID, "user_update", fmt.Sprintf("user=%d", target.ID))

	resp := toUserResponse(target)

	return &resp, nil
}
