package mock

import (
	"context"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

// VideoRepo implements video persistence for tests.
type VideoRepo struct {
	VideoRecord *model.Video

	CreateErr      error
	UpdateErr      error
	GetErr         error
	DeleteErr      error
	ListPublicErr  error
	ListByOwnerErr error

	ListPublicOut  []model.Video
	ListByOwnerOut []model.Video

	Created           *model.Video
	Updated           *model.Video
	GetCalled         bool
	GetID             db.UUID
	DeleteCalled      bool
	DeletedID         db.UUID
	ListPublicCalled  bool
	ListByOwnerCalled bool
	ListOwnerID       db.UUID
	ListFilter        port.VideoFilter
}

func (m *VideoRepo) Create(ctx context.Context, video *model.Video) error {
	m.Created = video
	return m.CreateErr
}

func (m *VideoRepo) Update(ctx context.Context, video *model.Video) error {
	m.Updated = video
	return m.UpdateErr
}

func (m *VideoRepo) GetByID(ctx context.Context, id db.UUID) (*model.Video, error) {
	m.GetCalled = true
	m.GetID = id
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.VideoRecord, nil
}

func (m *VideoRepo) Delete(ctx context.Context, id db.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *VideoRepo) ListPublic(ctx context.Context) ([]model.Video, error) {
	m.ListPublicCalled = true
	if m.ListPublicErr != nil {
		return nil, m.ListPublicErr
	}
	return m.ListPublicOut, nil
}

func (m *VideoRepo) ListByOwner(ctx context.Context, ownerID db.UUID, filter port.VideoFilter) ([]model.Video, error) {
	m.ListByOwnerCalled = true
	m.ListOwnerID = ownerID
	m.ListFilter = filter
	if m.ListByOwnerErr != nil {
		return nil, m.ListByOwnerErr
	}
	return m.ListByOwnerOut, nil
}
