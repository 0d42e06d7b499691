package service_test

import (
	"testing"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
)

// TestOperationLogRecordsActions 上传与删除留下审计条目，仅管理员可查.
func TestOperationLogRecordsActions(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	admin := seedUser(t, mgr, "carol", 1, model.RoleAdmin)

	pics := service.NewPictureService(ctx)
	ownerCtx := as(ctx, owner)
	picID := uploadOne(t, ownerCtx, pics)

	if err := pics.SoftDelete(ownerCtx, picID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	svc := service.NewOperationLogService(ctx)

	if _, err := svc.List(ownerCtx); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("member: expected forbidden, got %v", err)
	}

	rows, err := svc.List(as(ctx, admin))
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}

	ops := make(map[string]bool)
	for _, r := range rows {
		ops[r.Operation] = true
	}

	if !ops["upload"] || !ops["delete"] {
		t.Errorf("expected upload and delete entries, got %v", ops)
	}
}
