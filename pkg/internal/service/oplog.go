package service

import (
	"context"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// OperationLogService 审计日志查询，管理员专属.
type OperationLogService struct {
	base
}

// NewOperationLogService 创建日志服务.
func NewOperationLogService(ctx context.Context) *OperationLogService {
	return &OperationLogService{base: newBase(ctx)}
}

// List 家族内操作日志，按时间降序.
func (s *OperationLogService) List(ctx context.Context) ([]types.OperationLogResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.RequireAdmin(id); err != nil {
		return nil, err
	}

	rows, err := s.oplogs.ListByFamily(ctx, id.FamilyID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "list operation logs", err)
	}

	resp := make([]types.OperationLogResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, types.OperationLogResponse{
			ID:         r.ID,
			UserID:     r.UserID,
			Operation:  r.Operation,
			Detail:     r.Detail,
			CreateDate: r.CreateDate,
		})
	}

	return resp, nil
}
