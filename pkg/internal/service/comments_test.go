package service_test

import (
	"testing"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// TestCommentRoundTrip 发表、列出、编辑评论.
func TestCommentRoundTrip(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	other := seedUser(t, mgr, "bob", 1, model.RoleGeneral)

	pics := service.NewPictureService(ctx)
	picID := uploadOne(t, as(ctx, owner), pics)

	svc := service.NewCommentService(ctx)

	// 其他成员也能评论
	created, err := svc.Create(as(ctx, other), picID, types.CommentRequest{Content: "すてき"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.UserName != "bob" {
		t.Errorf("user_name: got %q, want bob", created.UserName)
	}

	rows, err := svc.ListByPicture(as(ctx, owner), picID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(rows) != 1 || rows[0].Content != "すてき" {
		t.Errorf("list: got %+v", rows)
	}

	if _, err := svc.Update(as(ctx, other), created.ID, types.CommentRequest{Content: "編集済み"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	rows, _ = svc.ListByPicture(as(ctx, owner), picID)
	if rows[0].Content != "編集済み" {
		t.Errorf("content after update: got %q", rows[0].Content)
	}
}

// TestCommentPermissions 作者本人或管理员可改删，其他成员被拒.
func TestCommentPermissions(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	author := seedUser(t, mgr, "bob", 1, model.RoleGeneral)
	admin := seedUser(t, mgr, "carol", 1, model.RoleAdmin)

	pics := service.NewPictureService(ctx)
	picID := uploadOne(t, as(ctx, owner), pics)

	svc := service.NewCommentService(ctx)

	cm, err := svc.Create(as(ctx, author), picID, types.CommentRequest{Content: "コメント"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 照片属主不等于评论作者
	if _, err := svc.Update(as(ctx, owner), cm.ID, types.CommentRequest{Content: "x"}); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("picture owner edit: expected forbidden, got %v", err)
	}

	if err := svc.Delete(as(ctx, admin), cm.ID); err != nil {
		t.Errorf("admin delete: %v", err)
	}

	rows, err := svc.ListByPicture(as(ctx, owner), picID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(rows) != 0 {
		t.Errorf("deleted comment should not be listed, got %+v", rows)
	}

	// 已删除评论不可再编辑
	if _, err := svc.Update(as(ctx, author), cm.ID, types.CommentRequest{Content: "y"}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("edit deleted: expected not found, got %v", err)
	}
}

// TestCommentOnDeletedPicture 软删除照片不可评论，其评论列表也不可见.
func TestCommentOnDeletedPicture(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	pics := service.NewPictureService(ctx)
	ownerCtx := as(ctx, owner)
	picID := uploadOne(t, ownerCtx, pics)

	if err := pics.SoftDelete(ownerCtx, picID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	svc := service.NewCommentService(ctx)

	if _, err := svc.Create(ownerCtx, picID, types.CommentRequest{Content: "x"}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("comment on deleted: expected not found, got %v", err)
	}

	if _, err := svc.ListByPicture(ownerCtx, picID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("list on deleted: expected not found, got %v", err)
	}
}

// TestCommentCrossFamily 他家族照片的评论入口表现为不存在.
func TestCommentCrossFamily(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	owner := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	outsider := seedUser(t, mgr, "mallory", 2, model.RoleGeneral)

	pics := service.NewPictureService(ctx)
	picID := uploadOne(t, as(ctx, owner), pics)

	svc := service.NewCommentService(ctx)

	if _, err := svc.Create(as(ctx, outsider), picID, types.CommentRequest{Content: "x"}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
