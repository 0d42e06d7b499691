package handle

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/internal/types"
	"github.com/khosokawa0716/family-album/pkg/log"
	"github.com/khosokawa0716/family-album/pkg/rule"
)

// UploadPictures 处理整批照片上传。multipart 表单：files 为文件字段，
// 其余字段为组共享元数据.
func UploadPictures(c *gin.Context) {
	var meta types.UploadMetaRequest
	if err := c.ShouldBind(&meta); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	if err := rule.ValidateStruct(&meta); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		abortWithError(c, apperr.Validation("multipart form required"))

		return
	}

	headers := form.File["files"]
	files := make([]service.UploadFile, 0, len(headers))

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			abortWithError(c, apperr.Wrap(apperr.KindValidation, fmt.Sprintf("open %q", fh.Filename), err))

			return
		}

		data, err := io.ReadAll(f)
		_ = f.Close()

		if err != nil {
			abortWithError(c, apperr.Wrap(apperr.KindValidation, fmt.Sprintf("read %q", fh.Filename), err))

			return
		}

		files = append(files, service.UploadFile{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	svc := service.NewPictureService(c.Request.Context())

	resp, err := svc.Upload(c.Request.Context(), meta, files)
	if err != nil {
		abortWithError(c, err)

		return
	}

	log.Logger().Info().
		Str("group_id", resp.GroupID).
		Int("files", len(resp.Pictures)).
		Msg("pictures ingested")

	c.JSON(http.StatusCreated, resp)
}

// ListPictures 有效照片列表，支持分类/年月/日期区间过滤与分页.
func ListPictures(c *gin.Context) {
	var q types.ListPicturesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	svc := service.NewPictureService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), q)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPicture 单张照片详情.
func GetPicture(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	svc := service.NewPictureService(c.Request.Context())

	resp, err := svc.GetPicture(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPictureGroup 整组照片详情.
func GetPictureGroup(c *gin.Context) {
	groupID := c.Param("group_id")

	svc := service.NewPictureService(c.Request.Context())

	resp, err := svc.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePicture 编辑组共享元数据，经组内任意一张照片发起.
func UpdatePicture(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req types.UpdatePictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		abortWithError(c, apperr.Validation(err.Error()))

		return
	}

	svc := service.NewPictureService(c.Request.Context())

	resp, err := svc.UpdateMetadata(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadPicture 下载原图（?thumb=1 时为缩略图）.
func DownloadPicture(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	thumb := c.Query("thumb") == "1"

	svc := service.NewPictureService(c.Request.Context())

	rc, pic, err := svc.Download(c.Request.Context(), id, thumb)
	if err != nil {
		abortWithError(c, err)

		return
	}
	defer rc.Close()

	contentType := pic.MimeType
	if thumb {
		contentType = "image/jpeg"
	}

	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "private, max-age=3600")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, rc); err != nil {
		log.Logger().Warn().Err(err).Uint("picture", pic.ID).Msg("stream picture failed")
	}
}
