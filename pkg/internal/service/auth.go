package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/dao"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// Claims 访问令牌的载荷.
type Claims struct {
	UserID   uint `json:"uid"`
	FamilyID uint `json:"fid"`
	Role     int8 `json:"role"`
	jwt.RegisteredClaims
}

// AuthService 登录与用户信息业务.
type AuthService struct {
	base
	users *dao.Users
}

// NewAuthService 创建认证服务.
func NewAuthService(ctx context.Context) *AuthService {
	b := newBase(ctx)

	return &AuthService{base: b, users: dao.NewUsers(b.db.DB)}
}

// Login 校验用户名密码并签发 JWT。用户名不存在与密码不符返回同一错误，不泄露存在性.
func (s *AuthService) Login(ctx context.Context, req types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.users.GetByUserName(ctx, req.UserName)
	if err != nil {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	if !user.IsActive() {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "issue token", err)
	}

	s.record(ctx, user.FamilyID, user.ID, "login", "")

	return &types.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// issueToken 签发 HS256 访问令牌.
func (s *AuthService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		FamilyID: user.FamilyID,
		Role:     int8(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.GetTokenTTL())),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.SecretKey))
}

// ParseToken 解析并校验访问令牌.
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthenticated("invalid or expired token")
	}

	return claims, nil
}

// Logout 无状态登出，仅记录审计日志。令牌在到期前仍然有效.
func (s *AuthService) Logout(ctx context.Context) error {
	id := ctxPkg.GetIdentity(ctx)
	if id.UserID == 0 || !id.Active {
		return apperr.Unauthenticated("authentication required")
	}

	s.record(ctx, id.FamilyID, id.UserID, "logout", "")

	return nil
}

// Me 返回当前登录用户信息.
func (s *AuthService) Me(ctx context.Context) (*types.UserResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if id.UserID == 0 || !id.Active {
		return nil, apperr.Unauthenticated("authentication required")
	}

	user, err := s.users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, mapDBErr(err, "user")
	}

	resp := toUserResponse(user)

	return &resp, nil
}

func toUserResponse(u *model.User) types.UserResponse {
	return types.UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Type:     int8(u.Role),
		FamilyID: u.FamilyID,
		Status:   u.Status,
	}
}
