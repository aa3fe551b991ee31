package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

var (
	testVideoID = db.UUID(uuid.MustParse("99999999-8888-7777-6666-555555555555"))
	testOwnerID = db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
)

func videoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "object_key", "thumbnail_key", "uploaded_by", "organization_id",
		"is_public", "processing_status", "processing_error", "sensitivity_status", "sensitivity_score",
		"size_bytes", "mime_type", "created_at", "updated_at",
	})
}

func TestVideoRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	v := &model.Video{
		ID:                testVideoID,
		Title:             "Holiday",
		ObjectKey:         "obj_1",
		UploadedBy:        testOwnerID,
		IsPublic:          true,
		ProcessingStatus:  model.ProcessingStatusPending,
		SensitivityStatus: model.SensitivityStatusPending,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO videos`)).
		WithArgs(
			v.ID, v.Title, v.Description,
			v.ObjectKey, v.ThumbnailKey,
			v.UploadedBy, v.OrganizationID,
			v.IsPublic, v.ProcessingStatus, v.ProcessingError,
			v.SensitivityStatus, v.SensitivityScore,
			v.SizeBytes, v.MimeType,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestVideoRepository_GetByID_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM videos WHERE id = ?`)).
		WithArgs(testVideoID).
		WillReturnRows(videoRows())

	_, err = repo.GetByID(context.Background(), testVideoID)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected port.ErrNotFound, got %v", err)
	}
}

func TestVideoRepository_GetByID_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	now := time.Now()
	rows := videoRows().AddRow(
		testVideoID, "Holiday", nil, "obj_1", nil, testOwnerID, nil,
		true, "completed", nil, "safe", 0.1,
		nil, nil, now, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM videos WHERE id = ?`)).
		WithArgs(testVideoID).
		WillReturnRows(rows)

	v, err := repo.GetByID(context.Background(), testVideoID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID != testVideoID || v.ProcessingStatus != model.ProcessingStatusCompleted {
		t.Errorf("unexpected video %+v", v)
	}
}

func TestVideoRepository_Delete_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM videos WHERE id = ?`)).
		WithArgs(testVideoID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), testVideoID); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected port.ErrNotFound, got %v", err)
	}
}

func TestVideoRepository_ListByOwner_Filters(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	status := model.ProcessingStatusFailed
	isPublic := false

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE uploaded_by = ? AND processing_status = ? AND is_public = ? ORDER BY created_at DESC`)).
		WithArgs(testOwnerID, status, isPublic).
		WillReturnRows(videoRows())

	vids, err := repo.ListByOwner(context.Background(), testOwnerID, port.VideoFilter{ProcessingStatus: &status, IsPublic: &isPublic})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vids) != 0 {
		t.Errorf("expected no rows, got %d", len(vids))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestVideoRepository_Create_DriverError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO videos`)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err = repo.Create(context.Background(), &model.Video{ID: testVideoID})
	if !errors.Is(err, port.ErrDuplicate) {
		t.Fatalf("expected port.ErrDuplicate, got %v", err)
	}
}
