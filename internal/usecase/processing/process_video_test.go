package processing

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/fhuszti/videos-ms-go/internal/mock"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/storage"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encoding png fixture: %v", err)
	}
	return buf.Bytes()
}

func TestProcessVideo_Success(t *testing.T) {
	v := videoIn(model.ProcessingStatusPending)
	v.ObjectKey = "obj_1"
	repo := &mock.VideoRepo{VideoRecord: v}
	tr := &mock.StatusTransitioner{VideoOut: v}
	strg := &mock.Storage{StatInfoOut: port.FileInfo{SizeBytes: 1024, ContentType: "video/mp4"}}
	svc := NewVideoProcessor(repo, tr, strg, "videos", "thumbnails")

	if err := svc.ProcessVideo(context.Background(), videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tr.StartCalled || !tr.CompleteCalled {
		t.Error("expected the video to be marked started then completed")
	}
	if tr.FailCalled {
		t.Error("expected no failure on the happy path")
	}
	if repo.Updated == nil {
		t.Fatal("expected probe results to be recorded")
	}
	if repo.Updated.SizeBytes == nil || *repo.Updated.SizeBytes != 1024 {
		t.Errorf("expected size 1024, got %v", repo.Updated.SizeBytes)
	}
	if repo.Updated.MimeType == nil || *repo.Updated.MimeType != "video/mp4" {
		t.Errorf("expected mime video/mp4, got %v", repo.Updated.MimeType)
	}
}

func TestProcessVideo_SourceMissing(t *testing.T) {
	v := videoIn(model.ProcessingStatusPending)
	v.ObjectKey = "obj_1"
	tr := &mock.StatusTransitioner{VideoOut: v}
	strg := &mock.Storage{StatErr: storage.ErrObjectNotFound}
	svc := NewVideoProcessor(&mock.VideoRepo{}, tr, strg, "videos", "thumbnails")

	// a missing source is a recorded failure, not a handler error: the task
	// must not be retried
	if err := svc.ProcessVideo(context.Background(), videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tr.FailCalled {
		t.Fatal("expected the video to be marked failed")
	}
	if !strings.Contains(tr.FailDetail, "obj_1") {
		t.Errorf("expected the detail to name the object, got %q", tr.FailDetail)
	}
	if tr.CompleteCalled {
		t.Error("a failed video must not be marked completed")
	}
}

func TestProcessVideo_MarkStartedRejected(t *testing.T) {
	tr := &mock.StatusTransitioner{StartErr: errors.New("already completed")}
	svc := NewVideoProcessor(&mock.VideoRepo{}, tr, &mock.Storage{}, "videos", "thumbnails")

	if err := svc.ProcessVideo(context.Background(), videoID); err == nil {
		t.Fatal("expected the rejection to surface")
	}
}

func TestProcessVideo_ThumbnailProbed(t *testing.T) {
	thumbKey := "obj_1_thumb"
	v := videoIn(model.ProcessingStatusPending)
	v.ObjectKey = "obj_1"
	v.ThumbnailKey = &thumbKey
	repo := &mock.VideoRepo{VideoRecord: v}
	tr := &mock.StatusTransitioner{VideoOut: v}
	strg := &mock.Storage{
		StatInfoOut: port.FileInfo{SizeBytes: 10, ContentType: "video/mp4"},
		GetOut:      pngBytes(t),
	}
	svc := NewVideoProcessor(repo, tr, strg, "videos", "thumbnails")

	if err := svc.ProcessVideo(context.Background(), videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strg.GetCalled {
		t.Error("expected the thumbnail to be fetched")
	}
	if !tr.CompleteCalled {
		t.Error("expected the video to complete")
	}
}

func TestProcessVideo_BrokenThumbnailStillCompletes(t *testing.T) {
	thumbKey := "obj_1_thumb"
	v := videoIn(model.ProcessingStatusPending)
	v.ObjectKey = "obj_1"
	v.ThumbnailKey = &thumbKey
	repo := &mock.VideoRepo{VideoRecord: v}
	tr := &mock.StatusTransitioner{VideoOut: v}
	strg := &mock.Storage{
		StatInfoOut: port.FileInfo{SizeBytes: 10, ContentType: "video/mp4"},
		GetOut:      []byte("definitely not an image"),
	}
	svc := NewVideoProcessor(repo, tr, strg, "videos", "thumbnails")

	if err := svc.ProcessVideo(context.Background(), videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tr.CompleteCalled || tr.FailCalled {
		t.Error("a broken thumbnail must not fail the video")
	}
}
