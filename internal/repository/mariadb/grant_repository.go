package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type GrantRepository struct {
	db *sql.DB
}

// compile-time check: *GrantRepository must satisfy port.GrantRepository
var _ port.GrantRepository = (*GrantRepository)(nil)

func NewGrantRepository(db *sql.DB) *GrantRepository {
	return &GrantRepository{db: db}
}

func (r *GrantRepository) Create(ctx context.Context, grant *model.AccessGrant) error {
	log.Printf("creating %q grant on video #%s for user #%s...", grant.Permission, grant.VideoID, grant.UserID)

	// the unique key on (user_id, video_id, permission) rejects duplicates
	const query = `
      INSERT INTO access_grants (id, user_id, video_id, permission)
      VALUES (?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query, grant.ID, grant.UserID, grant.VideoID, grant.Permission)
	return mapErr(err)
}

func (r *GrantRepository) Get(ctx context.Context, userID, videoID db.UUID, permission model.Permission) (*model.AccessGrant, error) {
	log.Printf("fetching %q grant on video #%s for user #%s...", permission, videoID, userID)

	const query = `
      SELECT id, user_id, video_id, permission, created_at
      FROM access_grants
      WHERE user_id = ? AND video_id = ? AND permission = ?
    `
	row := r.db.QueryRowContext(ctx, query, userID, videoID, permission)

	var grant model.AccessGrant
	if err := row.Scan(&grant.ID, &grant.UserID, &grant.VideoID, &grant.Permission, &grant.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &grant, nil
}

func (r *GrantRepository) Delete(ctx context.Context, userID, videoID db.UUID, permission model.Permission) error {
	log.Printf("deleting %q grant on video #%s for user #%s...", permission, videoID, userID)

	const query = `DELETE FROM access_grants WHERE user_id = ? AND video_id = ? AND permission = ?`
	res, err := r.db.ExecContext(ctx, query, userID, videoID, permission)
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

func (r *GrantRepository) DeleteByVideo(ctx context.Context, videoID db.UUID) error {
	log.Printf("deleting all grants on video #%s...", videoID)

	const query = `DELETE FROM access_grants WHERE video_id = ?`
	_, err := r.db.ExecContext(ctx, query, videoID)
	return mapErr(err)
}

func (r *GrantRepository) ListByVideo(ctx context.Context, videoID db.UUID) ([]model.AccessGrant, error) {
	log.Printf("listing grants on video #%s...", videoID)

	const query = `
      SELECT id, user_id, video_id, permission, created_at
      FROM access_grants
      WHERE video_id = ?
      ORDER BY created_at ASC
    `
	rows, err := r.db.QueryContext(ctx, query, videoID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var grants []model.AccessGrant
	for rows.Next() {
		var grant model.AccessGrant
		if err := rows.Scan(&grant.ID, &grant.UserID, &grant.VideoID, &grant.Permission, &grant.CreatedAt); err != nil {
			return nil, err
		}
		grants = append(grants, grant)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return grants, nil
}
