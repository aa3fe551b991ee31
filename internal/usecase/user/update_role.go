package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type roleUpdaterSrv struct {
	users port.UserRepository
}

var _ port.RoleUpdater = (*roleUpdaterSrv)(nil)

func NewRoleUpdater(users port.UserRepository) port.RoleUpdater {
	return &roleUpdaterSrv{users: users}
}

// UpdateRole changes a user's role. Admin only; admins may not demote
// themselves, so an instance can never lose its last administrator by
// accident.
func (s *roleUpdaterSrv) UpdateRole(ctx context.Context, requester model.Requester, userID db.UUID, role model.Role) (*model.User, error) {
	if requester.Role != model.RoleAdmin {
		return nil, apperr.AccessDenied("only admins may change roles")
	}
	if !role.IsValid() {
		return nil, apperr.Validation("unknown role %q", role)
	}
	if requester.ID == userID && role != model.RoleAdmin {
		return nil, apperr.Validation("admins cannot demote themselves")
	}

	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, apperr.NotFound("user #%s not found", userID)
		}
		return nil, fmt.Errorf("fetching user #%s: %w", userID, err)
	}

	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return nil, fmt.Errorf("updating role of user #%s: %w", userID, err)
	}
	target.Role = role

	logger.Infof(ctx, "user #%s is now %q", userID, role)
	return target, nil
}
