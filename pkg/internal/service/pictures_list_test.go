package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/storage"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

// seedPicture 直接写入照片行，便于控制 create_date 与分类.
func seedPicture(t *testing.T, mgr *storage.Manager, familyID, uploadedBy uint,
	groupID string, categoryID *uint, taken *time.Time, created time.Time,
) *model.Picture {
	t.Helper()

	p := &model.Picture{
		FamilyID:   familyID,
		UploadedBy: uploadedBy,
		GroupID:    groupID,
		CategoryID: categoryID,
		FilePath:   fmt.Sprintf("photos/%d/%s.jpg", familyID, groupID),
		ThumbPath:  fmt.Sprintf("thumbnails/%d/%s.jpg", familyID, groupID),
		FileSize:   1024,
		MimeType:   "image/jpeg",
		Width:      100,
		Height:     100,
		TakenDate:  taken,
		Status:     model.StatusActive,
		CreateDate: created,
	}
	if err := mgr.DB.Create(p).Error; err != nil {
		t.Fatalf("seed picture: %v", err)
	}

	return p
}

// TestListOrderAndPagination 列表按 create_date 降序、组分块、has_more 计算.
func TestListOrderAndPagination(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	member := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedPicture(t, mgr, 1, member.ID, fmt.Sprintf("g%d", i), nil, nil, base.Add(time.Duration(i)*time.Hour))
	}

	svc := service.NewPictureService(ctx)
	authed := as(ctx, member)

	resp, err := svc.List(authed, types.ListPicturesQuery{Limit: 3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Pagination.Total != 5 {
		t.Errorf("total: got %d, want 5", resp.Pagination.Total)
	}

	if !resp.Pagination.HasMore {
		t.Error("has_more should be true on first page")
	}

	if len(resp.Groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(resp.Groups))
	}

	// 最新的组在最前
	if resp.Groups[0].GroupID != "g4" || resp.Groups[2].GroupID != "g2" {
		t.Errorf("order: got %s..%s, want g4..g2", resp.Groups[0].GroupID, resp.Groups[2].GroupID)
	}

	last, err := svc.List(authed, types.ListPicturesQuery{Limit: 3, Offset: 3})
	if err != nil {
		t.Fatalf("second page: %v", err)
	}

	if last.Pagination.HasMore {
		t.Error("has_more should be false on last page")
	}

	if len(last.Groups) != 2 {
		t.Errorf("got %d groups, want 2", len(last.Groups))
	}
}

// TestListGroupsKeepSubmissionOrder 同组照片合并为一块，组内按ID升序.
func TestListGroupsKeepSubmissionOrder(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	member := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := seedPicture(t, mgr, 1, member.ID, "trip", nil, nil, created)
	b := seedPicture(t, mgr, 1, member.ID, "trip", nil, nil, created)

	svc := service.NewPictureService(ctx)

	resp, err := svc.List(as(ctx, member), types.ListPicturesQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(resp.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(resp.Groups))
	}

	g := resp.Groups[0]
	if len(g.Pictures) != 2 || g.Pictures[0].ID != a.ID || g.Pictures[1].ID != b.ID {
		t.Errorf("group members out of order: %+v", g.Pictures)
	}
}

// TestListFilters 分类与拍摄时间过滤.
func TestListFilters(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	member := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	cat1, cat2 := uint(1), uint(2)
	may := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	june := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	seedPicture(t, mgr, 1, member.ID, "a", &cat1, &may, created)
	seedPicture(t, mgr, 1, member.ID, "b", &cat2, &june, created.Add(time.Hour))
	seedPicture(t, mgr, 1, member.ID, "c", nil, nil, created.Add(2*time.Hour))

	svc := service.NewPictureService(ctx)
	authed := as(ctx, member)

	// 分类 OR
	resp, err := svc.List(authed, types.ListPicturesQuery{Category: "1,2"})
	if err != nil {
		t.Fatalf("category or: %v", err)
	}

	if resp.Pagination.Total != 2 {
		t.Errorf("category or: got %d, want 2", resp.Pagination.Total)
	}

	// 分类 AND
	resp, err = svc.List(authed, types.ListPicturesQuery{CategoryAnd: "2"})
	if err != nil {
		t.Fatalf("category and: %v", err)
	}

	if resp.Pagination.Total != 1 || resp.Groups[0].GroupID != "b" {
		t.Errorf("category and: got total %d", resp.Pagination.Total)
	}

	// 年月
	resp, err = svc.List(authed, types.ListPicturesQuery{Year: 2025, Month: 5})
	if err != nil {
		t.Fatalf("year month: %v", err)
	}

	if resp.Pagination.Total != 1 || resp.Groups[0].GroupID != "a" {
		t.Errorf("year month: got total %d", resp.Pagination.Total)
	}

	// 日期区间，终止日含当天
	resp, err = svc.List(authed, types.ListPicturesQuery{StartDate: "2025-06-01", EndDate: "2025-06-20"})
	if err != nil {
		t.Fatalf("date range: %v", err)
	}

	if resp.Pagination.Total != 1 || resp.Groups[0].GroupID != "b" {
		t.Errorf("date range: got total %d", resp.Pagination.Total)
	}
}

// TestListValidation 非法过滤参数.
func TestListValidation(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	member := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	svc := service.NewPictureService(ctx)
	authed := as(ctx, member)

	cases := []types.ListPicturesQuery{
		{Month: 5},                      // 月份缺年份
		{Category: "abc"},               // 非数字分类
		{StartDate: "2025-06-20", EndDate: "2025-06-01"}, // 区间颠倒
		{Offset: -1},
	}

	for i, q := range cases {
		if _, err := svc.List(authed, q); apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

// TestListScopedToFamily 列表只包含本家族的照片.
func TestListScopedToFamily(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	alice := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	eve := seedUser(t, mgr, "eve", 2, model.RoleGeneral)

	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seedPicture(t, mgr, 1, alice.ID, "mine", nil, nil, created)
	seedPicture(t, mgr, 2, eve.ID, "theirs", nil, nil, created)

	svc := service.NewPictureService(ctx)

	resp, err := svc.List(as(ctx, alice), types.ListPicturesQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Pagination.Total != 1 || resp.Groups[0].GroupID != "mine" {
		t.Errorf("family scope leaked: %+v", resp.Groups)
	}
}

// TestListDeletedIsAdminOnly 回收站列表对普通成员关闭.
func TestListDeletedIsAdminOnly(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	member := seedUser(t, mgr, "alice", 1, model.RoleGeneral)
	admin := seedUser(t, mgr, "carol", 1, model.RoleAdmin)

	svc := service.NewPictureService(ctx)
	picID := uploadOne(t, as(ctx, member), svc)

	if err := svc.SoftDelete(as(ctx, member), picID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, err := svc.ListDeleted(as(ctx, member), types.ListPicturesQuery{}); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("member: expected forbidden, got %v", err)
	}

	resp, err := svc.ListDeleted(as(ctx, admin), types.ListPicturesQuery{})
	if err != nil {
		t.Fatalf("admin: %v", err)
	}

	if resp.Pagination.Total != 1 {
		t.Errorf("trash total: got %d, want 1", resp.Pagination.Total)
	}

	// 软删除的照片不再出现在正常列表
	active, err := svc.List(as(ctx, member), types.ListPicturesQuery{})
	if err != nil {
		t.Fatalf("active list: %v", err)
	}

	if active.Pagination.Total != 0 {
		t.Errorf("active total: got %d, want 0", active.Pagination.Total)
	}
}
