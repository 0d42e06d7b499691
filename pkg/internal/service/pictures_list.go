package service

import (
	"context"
	"strconv"
	"strings"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/dao"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// List 返回家族内有效照片，按组分块。排序 create_date DESC, id DESC.
func (s *PictureService) List(ctx context.Context, q types.ListPicturesQuery) (*types.ListPicturesResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.Authorize(id, guard.ActionRead, guard.Resource{FamilyID: id.FamilyID}); err != nil {
		return nil, err
	}

	return s.list(ctx, id.FamilyID, model.StatusActive, q)
}

// ListDeleted 回收站列表，管理员专属.
func (s *PictureService) ListDeleted(ctx context.Context, q types.ListPicturesQuery) (*types.ListPicturesResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.RequireAdmin(id); err != nil {
		return nil, err
	}

	return s.list(ctx, id.FamilyID, model.StatusDeleted, q)
}

func (s *PictureService) list(ctx context.Context, familyID uint,
	status model.PictureStatus, q types.ListPicturesQuery,
) (*types.ListPicturesResponse, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	offset := q.Offset
	if offset < 0 {
		return nil, apperr.Validation("offset must not be negative")
	}

	rows, total, err := s.pictures.List(ctx, familyID, status, *filter, limit, offset)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "list pictures", err)
	}

	return &types.ListPicturesResponse{
		Groups: s.groupRows(rows),
		Pagination: types.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset+limit) < total,
		},
	}, nil
}

// buildFilter 校验并组装过滤条件。月份过滤必须同时给出年份.
func buildFilter(q types.ListPicturesQuery) (*dao.PictureFilter, error) {
	if q.Month != 0 && q.Year == 0 {
		return nil, apperr.Validation("month filter requires year")
	}

	if q.Month < 0 || q.Month > 12 {
		return nil, apperr.Validation("month must be between 1 and 12")
	}

	categoryIDs, err := parseIDList(q.Category)
	if err != nil {
		return nil, err
	}

	categoryAnd, err := parseIDList(q.CategoryAnd)
	if err != nil {
		return nil, err
	}

	start, err := parseDate(q.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := parseDate(q.EndDate)
	if err != nil {
		return nil, err
	}

	if start != nil && end != nil && end.Before(*start) {
		return nil, apperr.Validation("end_date must not be before start_date")
	}

	return &dao.PictureFilter{
		CategoryIDs: categoryIDs,
		CategoryAnd: categoryAnd,
		Year:        q.Year,
		Month:       q.Month,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// parseIDList 解析逗号分隔的ID列表.
func parseIDList(s string) ([]uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || n == 0 {
			return nil, apperr.Newf(apperr.KindValidation, "invalid category id %q", p)
		}

		ids = append(ids, uint(n))
	}

	return ids, nil
}
