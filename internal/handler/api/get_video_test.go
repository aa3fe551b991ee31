package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/fhuszti/videos-ms-go/internal/api_context"
	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/mock"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

func TestGetVideoHandler(t *testing.T) {
	validID := db.UUID(uuid.MustParse("99999999-8888-7777-6666-555555555555"))
	requesterID := db.UUID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))

	tests := []struct {
		name           string
		ctxID          *db.UUID
		authID         *db.UUID
		svcErr         error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "missing id",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "Missing video ID",
		},
		{
			name:           "not found",
			ctxID:          &validID,
			svcErr:         apperr.NotFound("video not found"),
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "video not found",
		},
		{
			name:           "access denied",
			ctxID:          &validID,
			authID:         &requesterID,
			svcErr:         apperr.AccessDenied("access denied"),
			wantStatus:     http.StatusForbidden,
			wantBodySubstr: "access denied",
		},
		{
			name:           "service error",
			ctxID:          &validID,
			svcErr:         errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Could not fetch video",
		},
		{
			name:       "happy path",
			ctxID:      &validID,
			authID:     &requesterID,
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.VideoGetter{
				Out: &port.GetVideoOutput{Video: model.Video{ID: validID}, DownloadURL: "https://example.com/get"},
				Err: tc.svcErr,
			}
			h := GetVideoHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/videos/"+validID.String(), nil)
			ctx := req.Context()
			if tc.ctxID != nil {
				ctx = context.WithValue(ctx, api_context.VideoIDKey, *tc.ctxID)
			}
			if tc.authID != nil {
				ctx = context.WithValue(ctx, api_context.AuthUserIDKey, *tc.authID)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantBodySubstr != "" && !strings.Contains(rec.Body.String(), tc.wantBodySubstr) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tc.wantBodySubstr)
			}

			if tc.wantStatus == http.StatusOK {
				if mockSvc.ID != validID {
					t.Errorf("service got ID = %s; want %s", mockSvc.ID, validID)
				}
				if tc.authID != nil && mockSvc.RequesterID != *tc.authID {
					t.Errorf("service got requester = %s; want %s", mockSvc.RequesterID, *tc.authID)
				}
				if !strings.Contains(rec.Body.String(), "https://example.com/get") {
					t.Errorf("expected the download URL in the body, got %q", rec.Body.String())
				}
			}
		})
	}
}

func TestGetVideoHandler_AnonymousRequester(t *testing.T) {
	validID := db.UUID(uuid.MustParse("99999999-8888-7777-6666-555555555555"))
	mockSvc := &mock.VideoGetter{Out: &port.GetVideoOutput{Video: model.Video{ID: validID}}}
	h := GetVideoHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/videos/"+validID.String(), nil)
	req = req.WithContext(context.WithValue(req.Context(), api_context.VideoIDKey, validID))

	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if !mockSvc.RequesterID.IsNil() {
		t.Errorf("anonymous requests must pass the nil requester, got %s", mockSvc.RequesterID)
	}
}
