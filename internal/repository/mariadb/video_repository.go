package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `
  id, title, description, object_key, thumbnail_key, uploaded_by, organization_id,
  is_public, processing_status, processing_error, sensitivity_status, sensitivity_score,
  size_bytes, mime_type, created_at, updated_at
`

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	log.Printf("creating database record for video #%s, at status %q...", video.ID, video.ProcessingStatus)

	const query = `
      INSERT INTO videos
        (id, title, description, object_key, thumbnail_key, uploaded_by, organization_id,
         is_public, processing_status, processing_error, sensitivity_status, sensitivity_score,
         size_bytes, mime_type)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.Title, video.Description,
		video.ObjectKey, video.ThumbnailKey,
		video.UploadedBy, video.OrganizationID,
		video.IsPublic, video.ProcessingStatus, video.ProcessingError,
		video.SensitivityStatus, video.SensitivityScore,
		video.SizeBytes, video.MimeType,
	)
	return mapErr(err)
}

func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	log.Printf("updating database record for video #%s, with status %q...", video.ID, video.ProcessingStatus)

	const query = `
      UPDATE videos
      SET
        title              = ?,
        description        = ?,
        thumbnail_key      = ?,
        is_public          = ?,
        processing_status  = ?,
        processing_error   = ?,
        sensitivity_status = ?,
        sensitivity_score  = ?,
        size_bytes         = ?,
        mime_type          = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		video.Title,
		video.Description,
		video.ThumbnailKey,
		video.IsPublic,
		video.ProcessingStatus,
		video.ProcessingError,
		video.SensitivityStatus,
		video.SensitivityScore,
		video.SizeBytes,
		video.MimeType,
		video.ID, // WHERE clause
	)
	return mapErr(err)
}

func (r *VideoRepository) GetByID(ctx context.Context, id db.UUID) (*model.Video, error) {
	log.Printf("fetching video #%s from the database...", id)

	const query = `SELECT ` + videoColumns + ` FROM videos WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var video model.Video
	if err := scanVideo(row.Scan, &video); err != nil {
		return nil, mapErr(err)
	}
	return &video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id db.UUID) error {
	log.Printf("deleting video #%s from the database...", id)

	const query = `DELETE FROM videos WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) ListPublic(ctx context.Context) ([]model.Video, error) {
	log.Print("listing public videos...")

	const query = `SELECT ` + videoColumns + ` FROM videos WHERE is_public = TRUE ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapErr(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()
	return collectVideos(rows)
}

func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID db.UUID, filter port.VideoFilter) ([]model.Video, error) {
	log.Printf("listing videos of user #%s...", ownerID)

	query := `SELECT ` + videoColumns + ` FROM videos WHERE uploaded_by = ?`
	args := []any{ownerID}
	if filter.ProcessingStatus != nil {
		query += ` AND processing_status = ?`
		args = append(args, *filter.ProcessingStatus)
	}
	if filter.IsPublic != nil {
		query += ` AND is_public = ?`
		args = append(args, *filter.IsPublic)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()
	return collectVideos(rows)
}

func scanVideo(scan func(dest ...any) error, video *model.Video) error {
	return scan(
		&video.ID, &video.Title, &video.Description,
		&video.ObjectKey, &video.ThumbnailKey,
		&video.UploadedBy, &video.OrganizationID,
		&video.IsPublic, &video.ProcessingStatus, &video.ProcessingError,
		&video.SensitivityStatus, &video.SensitivityScore,
		&video.SizeBytes, &video.MimeType,
		&video.CreatedAt, &video.UpdatedAt,
	)
}

func collectVideos(rows *sql.Rows) ([]model.Video, error) {
	var videos []model.Video
	for rows.Next() {
		var video model.Video
		if err := scanVideo(rows.Scan, &video); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}
