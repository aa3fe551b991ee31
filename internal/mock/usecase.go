package mock

import (
	"context"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

// Registrar implements user registration for tests.
type Registrar struct {
	UserOut *model.User
	Err     error

	Called bool
	In     port.RegisterInput
}

func (m *Registrar) Register(ctx context.Context, in port.RegisterInput) (*model.User, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return nil, m.Err
	}
	return m.UserOut, nil
}

// Authenticator implements credential checks for tests.
type Authenticator struct {
	Out port.LoginOutput
	Err error

	Called bool
	In     port.LoginInput
}

func (m *Authenticator) Login(ctx context.Context, in port.LoginInput) (port.LoginOutput, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return port.LoginOutput{}, m.Err
	}
	return m.Out, nil
}

// AccessChecker implements the access decision for tests.
type AccessChecker struct {
	VideoOut *model.Video
	Err      error

	Called      bool
	RequesterID db.UUID
	VideoID     db.UUID
	Permission  model.Permission
}

func (m *AccessChecker) CheckAccess(ctx context.Context, requesterID db.UUID, videoID db.UUID, permission model.Permission) (*model.Video, error) {
	m.Called = true
	m.RequesterID = requesterID
	m.VideoID = videoID
	m.Permission = permission
	if m.Err != nil {
		return nil, m.Err
	}
	return m.VideoOut, nil
}

// StatusTransitioner implements lifecycle transitions for tests.
type StatusTransitioner struct {
	VideoOut *model.Video

	TransitionErr error
	StartErr      error
	CompleteErr   error
	FailErr       error

	TransitionCalled bool
	StartCalled      bool
	CompleteCalled   bool
	FailCalled       bool
	FailDetail       string
	LastStatus       model.ProcessingStatus
}

func (m *StatusTransitioner) Transition(ctx context.Context, videoID db.UUID, newStatus model.ProcessingStatus, errorDetail *string) (*model.Video, error) {
	m.TransitionCalled = true
	m.LastStatus = newStatus
	if m.TransitionErr != nil {
		return nil, m.TransitionErr
	}
	return m.VideoOut, nil
}

func (m *StatusTransitioner) MarkStarted(ctx context.Context, videoID db.UUID) (*model.Video, error) {
	m.StartCalled = true
	if m.StartErr != nil {
		return nil, m.StartErr
	}
	return m.VideoOut, nil
}

func (m *StatusTransitioner) MarkCompleted(ctx context.Context, videoID db.UUID) (*model.Video, error) {
	m.CompleteCalled = true
	if m.CompleteErr != nil {
		return nil, m.CompleteErr
	}
	return m.VideoOut, nil
}

func (m *StatusTransitioner) MarkFailed(ctx context.Context, videoID db.UUID, detail string) (*model.Video, error) {
	m.FailCalled = true
	m.FailDetail = detail
	if m.FailErr != nil {
		return nil, m.FailErr
	}
	return m.VideoOut, nil
}

// VideoProcessor implements the worker pipeline entrypoint for tests.
type VideoProcessor struct {
	Err error

	Called bool
	ID     db.UUID
}

func (m *VideoProcessor) ProcessVideo(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// VideoGetter implements video detail retrieval for tests.
type VideoGetter struct {
	Out *port.GetVideoOutput
	Err error

	Called      bool
	RequesterID db.UUID
	ID          db.UUID
}

func (m *VideoGetter) GetVideo(ctx context.Context, requesterID db.UUID, id db.UUID) (*port.GetVideoOutput, error) {
	m.Called = true
	m.RequesterID = requesterID
	m.ID = id
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}

// VideoDeleter implements video deletion for tests.
type VideoDeleter struct {
	Err error

	Called    bool
	Requester model.Requester
	ID        db.UUID
}

func (m *VideoDeleter) DeleteVideo(ctx context.Context, requester model.Requester, id db.UUID) error {
	m.Called = true
	m.Requester = requester
	m.ID = id
	return m.Err
}

// UploadFinaliser implements upload finalisation for tests.
type UploadFinaliser struct {
	Err error

	Called    bool
	Requester model.Requester
	ID        db.UUID
}

func (m *UploadFinaliser) FinaliseUpload(ctx context.Context, requester model.Requester, id db.UUID) error {
	m.Called = true
	m.Requester = requester
	m.ID = id
	return m.Err
}

// UploadLinkGenerator implements upload link generation for tests.
type UploadLinkGenerator struct {
	Out port.GenerateUploadLinkOutput
	Err error

	Called    bool
	Requester model.Requester
	In        port.GenerateUploadLinkInput
}

func (m *UploadLinkGenerator) GenerateUploadLink(ctx context.Context, requester model.Requester, in port.GenerateUploadLinkInput) (port.GenerateUploadLinkOutput, error) {
	m.Called = true
	m.Requester = requester
	m.In = in
	if m.Err != nil {
		return port.GenerateUploadLinkOutput{}, m.Err
	}
	return m.Out, nil
}
