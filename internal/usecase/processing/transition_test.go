package processing

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

var videoID = db.UUID(uuid.MustParse("99999999-8888-7777-6666-555555555555"))

func videoIn(status model.ProcessingStatus) *model.Video {
	return &model.Video{ID: videoID, ProcessingStatus: status}
}

func TestTransition_UnknownStatus(t *testing.T) {
	svc := NewStatusTransitioner(&mock.VideoRepo{}, &mock.Cache{})

	_, err := svc.Transition(context.Background(), videoID, model.ProcessingStatus("minced"), nil)
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTransition_FailedRequiresDetail(t *testing.T) {
	svc := NewStatusTransitioner(&mock.VideoRepo{VideoRecord: videoIn(model.ProcessingStatusProcessing)}, &mock.Cache{})

	if _, err := svc.Transition(context.Background(), videoID, model.ProcessingStatusFailed, nil); !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for nil detail, got %v", err)
	}
	empty := ""
	if _, err := svc.Transition(context.Background(), videoID, model.ProcessingStatusFailed, &empty); !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for empty detail, got %v", err)
	}
}

func TestTransition_NotFound(t *testing.T) {
	svc := NewStatusTransitioner(&mock.VideoRepo{GetErr: port.ErrNotFound}, &mock.Cache{})

	_, err := svc.Transition(context.Background(), videoID, model.ProcessingStatusProcessing, nil)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTransition_CompletedIsTerminal(t *testing.T) {
	// every target, including completed itself, is rejected once the video
	// has completed processing
	for _, target := range []model.ProcessingStatus{
		model.ProcessingStatusPending,
		model.ProcessingStatusProcessing,
		model.ProcessingStatusCompleted,
		model.ProcessingStatusFailed,
	} {
		repo := &mock.VideoRepo{VideoRecord: videoIn(model.ProcessingStatusCompleted)}
		svc := NewStatusTransitioner(repo, &mock.Cache{})

		detail := "boom"
		var errDetail *string
		if target == model.ProcessingStatusFailed {
			errDetail = &detail
		}
		_, err := svc.Transition(context.Background(), videoID, target, errDetail)
		if !apperr.IsKind(err, apperr.KindInvalidTransition) {
			t.Errorf("target %q: expected invalid transition, got %v", target, err)
		}
		if repo.Updated != nil {
			t.Errorf("target %q: terminal state must never be written over", target)
		}
	}
}

func TestTransition_IllegalMoves(t *testing.T) {
	cases := []struct {
		from, to model.ProcessingStatus
	}{
		{model.ProcessingStatusPending, model.ProcessingStatusCompleted},
		{model.ProcessingStatusPending, model.ProcessingStatusPending},
		{model.ProcessingStatusProcessing, model.ProcessingStatusPending},
		{model.ProcessingStatusProcessing, model.ProcessingStatusProcessing},
		{model.ProcessingStatusFailed, model.ProcessingStatusCompleted},
	}
	for _, c := range cases {
		repo := &mock.VideoRepo{VideoRecord: videoIn(c.from)}
		svc := NewStatusTransitioner(repo, &mock.Cache{})

		_, err := svc.Transition(context.Background(), videoID, c.to, nil)
		if !apperr.IsKind(err, apperr.KindInvalidTransition) {
			t.Errorf("%q -> %q: expected invalid transition, got %v", c.from, c.to, err)
		}
		if repo.Updated != nil {
			t.Errorf("%q -> %q: rejected transition must not persist anything", c.from, c.to)
		}
	}
}

func TestTransition_PendingFailedDirectlyRejected(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: videoIn(model.ProcessingStatusPending)}
	svc := NewStatusTransitioner(repo, &mock.Cache{})

	detail := "boom"
	_, err := svc.Transition(context.Background(), videoID, model.ProcessingStatusFailed, &detail)
	if !apperr.IsKind(err, apperr.KindInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestTransition_HappyPath(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: videoIn(model.ProcessingStatusPending)}
	ca := &mock.Cache{}
	svc := NewStatusTransitioner(repo, ca)

	vid, err := svc.Transition(context.Background(), videoID, model.ProcessingStatusProcessing, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vid.ProcessingStatus != model.ProcessingStatusProcessing {
		t.Errorf("expected processing, got %q", vid.ProcessingStatus)
	}
	if repo.Updated == nil {
		t.Error("expected the new status to be persisted")
	}
	if !ca.DelCalled {
		t.Error("expected the cache entry to be evicted")
	}
}

func TestTransition_MarkFailedStoresDetail(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: videoIn(model.ProcessingStatusProcessing)}
	svc := NewStatusTransitioner(repo, &mock.Cache{})

	vid, err := svc.MarkFailed(context.Background(), videoID, "probe exploded")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vid.ProcessingStatus != model.ProcessingStatusFailed {
		t.Errorf("expected failed, got %q", vid.ProcessingStatus)
	}
	if vid.ProcessingError == nil || *vid.ProcessingError != "probe exploded" {
		t.Errorf("expected the error detail to be stored, got %v", vid.ProcessingError)
	}
}

func TestTransition_RetryClearsDetail(t *testing.T) {
	detail := "stale failure"
	v := videoIn(model.ProcessingStatusFailed)
	v.ProcessingError = &detail
	repo := &mock.VideoRepo{VideoRecord: v}
	svc := NewStatusTransitioner(repo, &mock.Cache{})

	vid, err := svc.MarkStarted(context.Background(), videoID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vid.ProcessingStatus != model.ProcessingStatusProcessing {
		t.Errorf("expected processing, got %q", vid.ProcessingStatus)
	}
	if vid.ProcessingError != nil {
		t.Errorf("expected the stale detail to be cleared, got %q", *vid.ProcessingError)
	}
}

func TestTransition_UpdateFailure(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: videoIn(model.ProcessingStatusProcessing), UpdateErr: errors.New("db fail")}
	svc := NewStatusTransitioner(repo, &mock.Cache{})

	if _, err := svc.MarkCompleted(context.Background(), videoID); err == nil {
		t.Fatal("expected error when the update fails")
	}
}

func TestTransition_FullLifecycle(t *testing.T) {
	repo := &mock.VideoRepo{VideoRecord: videoIn(model.ProcessingStatusPending)}
	svc := NewStatusTransitioner(repo, &mock.Cache{})

	if _, err := svc.MarkStarted(context.Background(), videoID); err != nil {
		t.Fatalf("pending -> processing: %v", err)
	}
	if _, err := svc.MarkFailed(context.Background(), videoID, "first try broke"); err != nil {
		t.Fatalf("processing -> failed: %v", err)
	}
	if _, err := svc.MarkStarted(context.Background(), videoID); err != nil {
		t.Fatalf("failed -> processing (retry): %v", err)
	}
	vid, err := svc.MarkCompleted(context.Background(), videoID)
	if err != nil {
		t.Fatalf("processing -> completed: %v", err)
	}
	if vid.ProcessingStatus != model.ProcessingStatusCompleted {
		t.Fatalf("expected completed, got %q", vid.ProcessingStatus)
	}
	if vid.ProcessingError != nil {
		t.Errorf("expected no error detail after completion, got %q", *vid.ProcessingError)
	}

	// and nothing moves it again
	if _, err := svc.MarkStarted(context.Background(), videoID); !apperr.IsKind(err, apperr.KindInvalidTransition) {
		t.Fatalf("expected invalid transition after completion, got %v", err)
	}
}
