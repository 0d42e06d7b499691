package service

import (
	"context"
	"io"
	"path"
	"strings"

	ctxPkg "github.com/khosokawa0716/family-album/pkg/context"
	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/guard"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/urlsign"
)

// Download 打开原图或缩略图的读取流，附带照片行以便设置响应头.
func (s *PictureService) Download(ctx context.Context, pictureID uint, thumb bool) (io.ReadCloser, *model.Picture, error) {
	id := ctxPkg.GetIdentity(ctx)
	if err := guard.Authorize(id, guard.ActionRead, guard.Resource{FamilyID: id.FamilyID}); err != nil {
		return nil, nil, err
	}

	pic, err := s.pictures.GetActiveByID(ctx, id.FamilyID, pictureID)
	if err != nil {
		return nil, nil, mapDBErr(err, "picture")
	}

	key := pic.FilePath
	if thumb {
		key = pic.ThumbPath
	}

	rc, err := s.blob.Read(ctx, key)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.KindStorage, "open picture bytes", err)
	}

	return rc, pic, nil
}

// OpenSigned 按签名URL核验后的文件名打开字节流。身份校验在签名层完成，
// 路径遍历在这里拦截.
func (s *PictureService) OpenSigned(ctx context.Context, filename string,
	endpoint urlsign.EndpointType,
) (io.ReadCloser, string, error) {
	if strings.Contains(filename, "..") || strings.HasPrefix(filename, "/") {
		return nil, "", apperr.NotFound("file not found")
	}

	key := string(endpoint) + "/" + filename

	rc, err := s.blob.Read(ctx, key)
	if err != nil {
		return nil, "", apperr.NotFound("file not found")
	}

	return rc, mimeByExt(path.Ext(filename)), nil
}

// mimeByExt 存储对象扩展名到MIME的映射。摄取管线只产出 jpg/png.
func mimeByExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
