package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/mock"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

var (
	adminID  = db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	targetID = db.UUID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))
)

func admin() model.Requester {
	return model.Requester{ID: adminID, Role: model.RoleAdmin}
}

func TestUpdateRole_NonAdminDenied(t *testing.T) {
	svc := NewRoleUpdater(&mock.UserRepo{})

	_, err := svc.UpdateRole(context.Background(), model.Requester{ID: targetID, Role: model.RoleEditor}, targetID, model.RoleAdmin)
	if !apperr.IsKind(err, apperr.KindAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestUpdateRole_UnknownRole(t *testing.T) {
	svc := NewRoleUpdater(&mock.UserRepo{})

	_, err := svc.UpdateRole(context.Background(), admin(), targetID, model.Role("overlord"))
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateRole_SelfDemotionBlocked(t *testing.T) {
	svc := NewRoleUpdater(&mock.UserRepo{})

	_, err := svc.UpdateRole(context.Background(), admin(), adminID, model.RoleViewer)
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateRole_TargetNotFound(t *testing.T) {
	svc := NewRoleUpdater(&mock.UserRepo{GetErr: port.ErrNotFound})

	_, err := svc.UpdateRole(context.Background(), admin(), targetID, model.RoleEditor)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateRole_Success(t *testing.T) {
	repo := &mock.UserRepo{UserRecord: &model.User{ID: targetID, Role: model.RoleViewer}}
	svc := NewRoleUpdater(repo)

	user, err := svc.UpdateRole(context.Background(), admin(), targetID, model.RoleEditor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != model.RoleEditor {
		t.Errorf("expected editor, got %q", user.Role)
	}
	if repo.UpdatedRoleID != targetID || repo.UpdatedRole != model.RoleEditor {
		t.Error("expected the new role to be persisted")
	}
}
