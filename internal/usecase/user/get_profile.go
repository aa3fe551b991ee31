package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type profileGetterSrv struct {
	users port.UserRepository
}

var _ port.ProfileGetter = (*profileGetterSrv)(nil)

func NewProfileGetter(users port.UserRepository) port.ProfileGetter {
	return &profileGetterSrv{users: users}
}

func (s *profileGetterSrv) GetProfile(ctx context.Context, id db.UUID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, apperr.NotFound("user #%s not found", id)
		}
		return nil, fmt.Errorf("fetching user #%s: %w", id, err)
	}
	return user, nil
}
