package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type UserRepository struct {
	db *sql.DB
}

// compile-time check: *UserRepository must satisfy port.UserRepository
var _ port.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	log.Printf("creating database record for user #%s...", user.ID)

	const query = `
      INSERT INTO users
        (id, email, password_hash, full_name, role, organization_id, avatar_url)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash,
		user.FullName, user.Role,
		user.OrganizationID, user.AvatarURL,
	)
	return mapErr(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id db.UUID) (*model.User, error) {
	log.Printf("fetching user #%s from the database...", id)

	const query = `
      SELECT id, email, password_hash, full_name, role, organization_id, avatar_url, created_at, updated_at
      FROM users
      WHERE id = ?
    `
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	log.Printf("fetching user %q from the database...", email)

	const query = `
      SELECT id, email, password_hash, full_name, role, organization_id, avatar_url, created_at, updated_at
      FROM users
      WHERE email = ?
    `
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) UpdateRole(ctx context.Context, id db.UUID, role model.Role) error {
	log.Printf("updating role of user #%s to %q...", id, role)

	const query = `UPDATE users SET role = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, role, id)
	return mapErr(err)
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	var user model.User
	if err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&user.FullName, &user.Role,
		&user.OrganizationID, &user.AvatarURL,
		&user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}
