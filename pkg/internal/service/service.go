// Package service 实现业务逻辑层，处理照片摄取、生命周期、分类、评论与认证相关业务.
package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/khosokawa0716/family-album/pkg/configs"
	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/dao"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/storage/blob"
	dbc "github.com/khosokawa0716/family-album/pkg/internal/storage/db"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
	nlog "github.com/khosokawa0716/family-album/pkg/log"
	"github.com/khosokawa0716/family-album/pkg/urlsign"
)

// base 各服务共享的资源句柄，从请求上下文中取出.
type base struct {
	cfg    *configs.AppConfig
	db     *dbc.Client
	blob   blob.Store
	signer *urlsign.Signer
	oplogs *dao.OperationLogs
}

// newBase 构造共享句柄.
func newBase(ctx context.Context) base {
	cfg := configs.GetConfig()
	db := ctxPkg.GetDBClient(ctx)

	return base{
		cfg:    cfg,
		db:     db,
		blob:   ctxPkg.GetBlobStore(ctx),
		signer: urlsign.New(cfg.Auth.SecretKey),
		oplogs: dao.NewOperationLogs(db.DB),
	}
}

// record 追加操作日志。日志失败只告警，不影响主流程.
func (b *base) record(ctx context.Context, familyID, userID uint, operation, detail string) {
	entry := &model.OperationLog{
		FamilyID:  familyID,
		UserID:    userID,
		Operation: operation,
		Detail:    detail,
	}
	if err := b.oplogs.Append(ctx, entry); err != nil {
		nlog.Logger().Warn().Err(err).Str("operation", operation).Msg("append operation log failed")
	}
}

// mapDBErr 折叠仓库层错误：未命中 → NotFound，其余 → Storage.
func mapDBErr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what + " not found")
	}

	return apperr.Wrap(apperr.KindStorage, "query "+what, err)
}

// parseDate 解析日期参数，接受 RFC3339 或 2006-01-02.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}

	return nil, apperr.Newf(apperr.KindValidation, "invalid date %q", s)
}

// toPictureResponse 把模型行转换为响应，文件路径替换为时限签名URL.
func (b *base) toPictureResponse(p *model.Picture) types.PictureResponse {
	ttl := b.cfg.Auth.GetSignedURLTTL()
	now := time.Now()

	return types.PictureResponse{
		ID:          p.ID,
		GroupID:     p.GroupID,
		Title:       p.Title,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		FilePath:    b.signer.SignedURL(strings.TrimPrefix(p.FilePath, "photos/"), urlsign.EndpointPhotos, ttl, now),
		ThumbPath:   b.signer.SignedURL(strings.TrimPrefix(p.ThumbPath, "thumbnails/"), urlsign.EndpointThumbnails, ttl, now),
		FileSize:    p.FileSize,
		MimeType:    p.MimeType,
		Width:       p.Width,
		Height:      p.Height,
		TakenDate:   p.TakenDate,
		UploadedBy:  p.UploadedBy,
		Status:      int8(p.Status),
		CreateDate:  p.CreateDate,
		UpdateDate:  p.UpdateDate,
	}
}

// groupRows 把照片行按 group_id 分块：组顺序按行序首次出现，组内按ID升序（提交顺序）.
func (b *base) groupRows(rows []model.Picture) []types.PictureGroupResponse {
	groups := make([]types.PictureGroupResponse, 0)
	index := make(map[string]int)

	for i := range rows {
		p := &rows[i]

		gi, ok := index[p.GroupID]
		if !ok {
			gi = len(groups)
			index[p.GroupID] = gi
			groups = append(groups, types.PictureGroupResponse{GroupID: p.GroupID})
		}

		groups[gi].Pictures = append(groups[gi].Pictures, b.toPictureResponse(p))
	}

	for gi := range groups {
		sort.Slice(groups[gi].Pictures, func(a, b int) bool {
			return groups[gi].Pictures[a].ID < groups[gi].Pictures[b].ID
		})
	}

	return groups
}
