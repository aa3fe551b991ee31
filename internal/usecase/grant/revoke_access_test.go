package grant

import (
	"context"
	"testing"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/mock"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

func TestRevokeAccess_UnknownPermission(t *testing.T) {
	svc := NewAccessRevoker(&mock.VideoRepo{}, &mock.GrantRepo{})

	err := svc.RevokeAccess(context.Background(), model.Requester{ID: ownerID}, videoID, granteeID, "own")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRevokeAccess_StrangerDenied(t *testing.T) {
	svc := NewAccessRevoker(&mock.VideoRepo{VideoRecord: theVideo()}, &mock.GrantRepo{})

	err := svc.RevokeAccess(context.Background(), model.Requester{ID: granteeID}, videoID, granteeID, model.PermissionView)
	if !apperr.IsKind(err, apperr.KindAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestRevokeAccess_GrantMissing(t *testing.T) {
	grants := &mock.GrantRepo{DeleteErr: port.ErrNotFound}
	svc := NewAccessRevoker(&mock.VideoRepo{VideoRecord: theVideo()}, grants)

	err := svc.RevokeAccess(context.Background(), model.Requester{ID: ownerID}, videoID, granteeID, model.PermissionView)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRevokeAccess_Success(t *testing.T) {
	grants := &mock.GrantRepo{}
	svc := NewAccessRevoker(&mock.VideoRepo{VideoRecord: theVideo()}, grants)

	if err := svc.RevokeAccess(context.Background(), model.Requester{ID: ownerID}, videoID, granteeID, model.PermissionView); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !grants.DeleteCalled {
		t.Error("expected the grant to be deleted")
	}
}
