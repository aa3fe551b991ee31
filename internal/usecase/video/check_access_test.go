package video

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/mock"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

var (
	ownerID    = db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	strangerID = db.UUID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))
	videoID    = db.UUID(uuid.MustParse("99999999-8888-7777-6666-555555555555"))
)

func privateVideo() *model.Video {
	return &model.Video{ID: videoID, UploadedBy: ownerID, IsPublic: false}
}

func publicVideo() *model.Video {
	return &model.Video{ID: videoID, UploadedBy: ownerID, IsPublic: true}
}

func TestCheckAccess_UnknownPermission(t *testing.T) {
	svc := NewAccessChecker(&mock.VideoRepo{}, &mock.GrantRepo{})

	_, err := svc.CheckAccess(context.Background(), strangerID, videoID, model.Permission("destroy"))
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCheckAccess_VideoNotFound(t *testing.T) {
	repo := &mock.VideoRepo{GetErr: port.ErrNotFound}
	svc := NewAccessChecker(repo, &mock.GrantRepo{})

	_, err := svc.CheckAccess(context.Background(), strangerID, videoID, model.PermissionView)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCheckAccess_PublicVideoAnonymousView(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: publicVideo()}
	grants := &mock.GrantRepo{}
	svc := NewAccessChecker(repo, grants)

	vid, err := svc.CheckAccess(context.Background(), db.Nil, videoID, model.PermissionView)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vid.ID != videoID {
		t.Errorf("expected video %s, got %s", videoID, vid.ID)
	}
	if grants.GetCalled {
		t.Error("public view must not hit the grants table")
	}
}

func TestCheckAccess_PublicVideoDoesNotImplyEdit(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: publicVideo()}
	grants := &mock.GrantRepo{GetErr: port.ErrNotFound}
	svc := NewAccessChecker(repo, grants)

	_, err := svc.CheckAccess(context.Background(), strangerID, videoID, model.PermissionEdit)
	if !apperr.IsKind(err, apperr.KindAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestCheckAccess_OwnerGetsView(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: privateVideo()}
	svc := NewAccessChecker(repo, &mock.GrantRepo{})

	if _, err := svc.CheckAccess(context.Background(), ownerID, videoID, model.PermissionView); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckAccess_OwnerGetsEdit(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: privateVideo()}
	grants := &mock.GrantRepo{}
	svc := NewAccessChecker(repo, grants)

	if _, err := svc.CheckAccess(context.Background(), ownerID, videoID, model.PermissionEdit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grants.GetCalled {
		t.Error("owner access must not hit the grants table")
	}
}

func TestCheckAccess_GrantedView(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: privateVideo()}
	grants := &mock.GrantRepo{GrantRecord: &model.AccessGrant{UserID: strangerID, VideoID: videoID, Permission: model.PermissionView}}
	svc := NewAccessChecker(repo, grants)

	if _, err := svc.CheckAccess(context.Background(), strangerID, videoID, model.PermissionView); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckAccess_GrantIsPermissionSpecific(t *testing.T) {
	// a view grant never answers an edit request; the lookup itself is keyed
	// on the requested permission, so a missing row means denial
	repo := &mock.VideoRepo{VideoRecord: privateVideo()}
	grants := &mock.GrantRepo{GetErr: port.ErrNotFound}
	svc := NewAccessChecker(repo, grants)

	_, err := svc.CheckAccess(context.Background(), strangerID, videoID, model.PermissionEdit)
	if !apperr.IsKind(err, apperr.KindAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestCheckAccess_AnonymousPrivateVideoDenied(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: privateVideo()}
	grants := &mock.GrantRepo{}
	svc := NewAccessChecker(repo, grants)

	_, err := svc.CheckAccess(context.Background(), db.Nil, videoID, model.PermissionView)
	if !apperr.IsKind(err, apperr.KindAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
	if grants.GetCalled {
		t.Error("anonymous requesters must never hit the grants table")
	}
}

func TestCheckAccess_GrantLookupFailure(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: privateVideo()}
	grants := &mock.GrantRepo{GetErr: errors.New("db fail")}
	svc := NewAccessChecker(repo, grants)

	_, err := svc.CheckAccess(context.Background(), strangerID, videoID, model.PermissionView)
	if err == nil || apperr.KindOf(err) != "" {
		t.Fatalf("expected plain internal error, got %v", err)
	}
}
