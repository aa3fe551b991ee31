package mock

import (
	"context"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
)

// GrantRepo implements grant persistence for tests.
type GrantRepo struct {
	GrantRecord *model.AccessGrant

	CreateErr        error
	GetErr           error
	DeleteErr        error
	DeleteByVideoErr error
	ListErr          error

	ListOut []model.AccessGrant

	Created             *model.AccessGrant
	GetCalled           bool
	DeleteCalled        bool
	DeleteByVideoCalled bool
	DeleteByVideoID     db.UUID
	ListCalled          bool
}

func (m *GrantRepo) Create(ctx context.Context, grant *model.AccessGrant) error {
	m.Created = grant
	return m.CreateErr
}

func (m *GrantRepo) Get(ctx context.Context, userID, videoID db.UUID, permission model.Permission) (*model.AccessGrant, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.GrantRecord, nil
}

func (m *GrantRepo) Delete(ctx context.Context, userID, videoID db.UUID, permission model.Permission) error {
	m.DeleteCalled = true
	return m.DeleteErr
}

func (m *GrantRepo) DeleteByVideo(ctx context.Context, videoID db.UUID) error {
	m.DeleteByVideoCalled = true
	m.DeleteByVideoID = videoID
	return m.DeleteByVideoErr
}

func (m *GrantRepo) ListByVideo(ctx context.Context, videoID db.UUID) ([]model.AccessGrant, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}
