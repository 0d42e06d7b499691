package service

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid"
	"gorm.io/gorm"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/imaging"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
	nlog "github.com/khosokawa0716/family-album/pkg/log"
	"github.com/khosokawa0716/family-album/pkg/metrics"
)

// UploadFile 一个待摄取的上传文件.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// formatMime 各格式的规范MIME，用于比对配置的允许类型.
var formatMime = map[imaging.Format]string{
	imaging.FormatJPEG: "image/jpeg",
	imaging.FormatPNG:  "image/png",
	imaging.FormatGIF:  "image/gif",
	imaging.FormatWebP: "image/webp",
	imaging.FormatHEIC: "image/heic",
}

// Upload 摄取一批照片（1..N张），整批原子：任何一张失败则全部不入库。
// 流程：先全量校验，再全量变换，随后写入字节后端，最后单事务写库；
// 事务失败时补偿删除已写入的字节.
func (s *PictureService) Upload(ctx context.Context, meta types.UploadMetaRequest, files []UploadFile) (*types.UploadResponse, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.Authorize(id, guard.ActionMutate, guard.Resource{FamilyID: id.FamilyID, OwnerID: id.UserID}); err != nil {
		return nil, err
	}

	formats, userTaken, err := s.validateBatch(ctx, id.FamilyID, meta, files)
	if err != nil {
		metrics.RejectedBatches.WithLabelValues(apperr.KindOf(err).String()).Inc()

		return nil, err
	}

	// 全部文件变换完成后才接触存储
	results := make([]*imaging.Result, len(files))
	opts := imaging.Options{
		MaxEdge:     s.cfg.Upload.MaxEdge,
		ThumbEdge:   s.cfg.Upload.ThumbnailEdge,
		JPEGQuality: s.cfg.Upload.JPEGQuality,
	}

	for i, f := range files {
		res, err := imaging.Process(f.Data, formats[i], opts)
		if err != nil {
			metrics.RejectedBatches.WithLabelValues(apperr.KindOf(err).String()).Inc()

			return nil, apperr.Wrap(apperr.KindProcessing, fmt.Sprintf("process %q", f.Name), err)
		}

		results[i] = res
	}

	groupID := uuid.NewString()
	now := time.Now()

	pics := make([]model.Picture, len(files))
	writtenKeys := make([]string, 0, len(files)*2)

	// 补偿删除已写入的对象
	cleanup := func() {
		for _, key := range writtenKeys {
			if derr := s.blob.Delete(context.WithoutCancel(ctx), key); derr != nil {
				nlog.Logger().Warn().Err(derr).Str("key", key).Msg("cleanup orphan blob failed")
			}
		}
	}

	for i, res := range results {
		name, err := newObjectName(now, res.Ext)
		if err != nil {
			cleanup()

			return nil, apperr.Wrap(apperr.KindInternal, "generate object name", err)
		}

		photoKey := fmt.Sprintf("photos/%d/%s", id.FamilyID, name)
		thumbKey := fmt.Sprintf("thumbnails/%d/%s", id.FamilyID, thumbName(name))

		if err := s.blob.Write(ctx, photoKey, bytes.NewReader(res.Data), int64(len(res.Data)), res.MimeType); err != nil {
			cleanup()

			return nil, apperr.Wrap(apperr.KindStorage, "write photo", err)
		}

		writtenKeys = append(writtenKeys, photoKey)

		if err := s.blob.Write(ctx, thumbKey, bytes.NewReader(res.Thumb), int64(len(res.Thumb)), "image/jpeg"); err != nil {
			cleanup()

			return nil, apperr.Wrap(apperr.KindStorage, "write thumbnail", err)
		}

		writtenKeys = append(writtenKeys, thumbKey)

		// 用户提交的拍摄日期优先于EXIF
		taken := userTaken
		if taken == nil {
			taken = res.TakenAt
		}

		pics[i] = model.Picture{
			FamilyID:    id.FamilyID,
			UploadedBy:  id.UserID,
			GroupID:     groupID,
			Title:       meta.Title,
			Description: meta.Description,
			CategoryID:  meta.CategoryID,
			FilePath:    photoKey,
			ThumbPath:   thumbKey,
			FileSize:    int64(len(res.Data)),
			MimeType:    res.MimeType,
			Width:       res.Width,
			Height:      res.Height,
			TakenDate:   taken,
		}
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&pics).Error
	}); err != nil {
		cleanup()
		metrics.RejectedBatches.WithLabelValues(apperr.KindStorage.String()).Inc()

		return nil, apperr.Wrap(apperr.KindStorage, "persist pictures", err)
	}

	var totalBytes int64
	for _, res := range results {
		totalBytes += int64(len(res.Data))
	}

	metrics.UploadedPictures.Add(float64(len(pics)))
	metrics.UploadedBytes.Add(float64(totalBytes))

	s.record(ctx, id.FamilyID, id.UserID, "upload",
		fmt.Sprintf("group=%s files=%d", groupID, len(pics)))

	resp := &types.UploadResponse{GroupID: groupID}
	for i := range pics {
		resp.Pictures = append(resp.Pictures, s.toPictureResponse(&pics[i]))
	}

	return resp, nil
}

// validateBatch 在任何变换或存储 I/O 之前完成整批校验.
func (s *PictureService) validateBatch(ctx context.Context, familyID uint,
	meta types.UploadMetaRequest, files []UploadFile,
) ([]imaging.Format, *time.Time, error) {
	if len(files) == 0 {
		return nil, nil, apperr.Validation("at least one file is required")
	}

	if max := s.cfg.Upload.MaxBatchFiles; len(files) > max {
		return nil, nil, apperr.Newf(apperr.KindValidation, "too many files: %d exceeds limit %d", len(files), max)
	}

	allowed := s.cfg.Upload.AllowedTypeSet()
	formats := make([]imaging.Format, len(files))

	for i, f := range files {
		if f.Size > s.cfg.Upload.MaxFileSize {
			return nil, nil, apperr.Newf(apperr.KindValidation,
				"file %q exceeds size limit %d bytes", f.Name, s.cfg.Upload.MaxFileSize)
		}

		format, err := imaging.DetectFormat(f.ContentType, f.Name)
		if err != nil {
			return nil, nil, err
		}

		if !allowed[formatMime[format]] {
			return nil, nil, apperr.Newf(apperr.KindValidation, "file type %s is not allowed", formatMime[format])
		}

		formats[i] = format
	}

	userTaken, err := parseDate(meta.TakenDate)
	if err != nil {
		return nil, nil, err
	}

	if meta.CategoryID != nil {
		if _, err := s.categories.GetActiveByID(ctx, familyID, *meta.CategoryID); err != nil {
			return nil, nil, apperr.Validation("category not found")
		}
	}

	return formats, userTaken, nil
}

// newObjectName 生成存储对象名：ULID + 扩展名，时间有序便于磁盘巡检.
func newObjectName(t time.Time, ext string) (string, error) {
	u, err := ulid.New(ulid.Timestamp(t), crand.Reader)
	if err != nil {
		return "", err
	}

	return u.String() + ext, nil
}

// thumbName 缩略图统一JPEG，替换扩展名.
func thumbName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i] + ".jpg"
		}
	}

	return name + ".jpg"
}
