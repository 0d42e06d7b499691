package service_test

import (
	"bytes"
	"image/jpeg"
	"io"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/khosokawa0716/family-album/pkg/internal/apperr"
	"github.com/khosokawa0716/family-album/pkg/internal/model"
	"github.com/khosokawa0716/family-album/pkg/internal/service"
	"github.com/khosokawa0716/family-album/pkg/urlsign"
)

// TestDownloadOriginalAndThumb 下载原图与缩略图都应是可解码的JPEG.
func TestDownloadOriginalAndThumb(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	member := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	svc := service.NewPictureService(ctx)
	authed := as(ctx, member)
	picID := uploadOne(t, authed, svc)

	for _, thumb := range []bool{false, true} {
		rc, pic, err := svc.Download(authed, picID, thumb)
		if err != nil {
			t.Fatalf("download thumb=%v: %v", thumb, err)
		}

		data, err := io.ReadAll(rc)
		rc.Close()

		if err != nil {
			t.Fatalf("read thumb=%v: %v", thumb, err)
		}

		if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
			t.Errorf("thumb=%v: bytes should decode as jpeg: %v", thumb, err)
		}

		if pic.ID != picID {
			t.Errorf("thumb=%v: picture row mismatch", thumb)
		}
	}
}

// TestDownloadDeletedPicture 软删除后下载入口关闭.
func TestDownloadDeletedPicture(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	member := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	svc := service.NewPictureService(ctx)
	authed := as(ctx, member)
	picID := uploadOne(t, authed, svc)

	if err := svc.SoftDelete(authed, picID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, _, err := svc.Download(authed, picID, false); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

// TestOpenSignedServesResponsePaths 响应里的签名URL经核验后应能取到字节.
func TestOpenSignedServesResponsePaths(t *testing.T) {
	ctx, mgr := newTestEnv(t)
	member := seedUser(t, mgr, "alice", 1, model.RoleGeneral)

	svc := service.NewPictureService(ctx)
	authed := as(ctx, member)
	picID := uploadOne(t, authed, svc)

	resp, err := svc.GetPicture(authed, picID)
	if err != nil {
		t.Fatalf("get picture: %v", err)
	}

	signer := urlsign.New("test-secret")

	u, err := url.Parse(resp.ThumbPath)
	if err != nil {
		t.Fatalf("parse signed url: %v", err)
	}

	filename := strings.TrimPrefix(u.Path, "/api/thumbnails/")

	expires, err := strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	if err != nil {
		t.Fatalf("parse expires: %v", err)
	}

	if !signer.Verify(filename, urlsign.EndpointThumbnails, u.Query().Get("signature"), expires, time.Now()) {
		t.Fatal("signature from response should verify")
	}

	rc, mime, err := svc.OpenSigned(ctx, filename, urlsign.EndpointThumbnails)
	if err != nil {
		t.Fatalf("open signed: %v", err)
	}
	defer rc.Close()

	if mime != "image/jpeg" {
		t.Errorf("mime: got %s", mime)
	}

	if _, err := jpeg.Decode(rc); err != nil {
		t.Errorf("served bytes should decode as jpeg: %v", err)
	}
}

// TestOpenSignedRejectsTraversal 路径遍历与缺失对象都表现为不存在.
func TestOpenSignedRejectsTraversal(t *testing.T) {
	ctx, _ := newTestEnv(t)

	svc := service.NewPictureService(ctx)

	for _, name := range []string{"../secrets.txt", "1/../../etc/passwd", "/absolute.jpg", "1/missing.jpg"} {
		if _, _, err := svc.OpenSigned(ctx, name, urlsign.EndpointPhotos); apperr.KindOf(err) != apperr.KindNotFound {
			t.Errorf("%s: expected not found, got %v", name, err)
		}
	}
}
