package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type OrganizationRepository struct {
	db *sql.DB
}

// compile-time check: *OrganizationRepository must satisfy port.OrganizationRepository
var _ port.OrganizationRepository = (*OrganizationRepository)(nil)

func NewOrganizationRepository(db *sql.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	log.Printf("creating database record for organization #%s...", org.ID)

	const query = `INSERT INTO organizations (id, name, description) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, org.ID, org.Name, org.Description)
	return mapErr(err)
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id db.UUID) (*model.Organization, error) {
	log.Printf("fetching organization #%s from the database...", id)

	const query = `SELECT id, name, description, created_at, updated_at FROM organizations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var org model.Organization
	if err := row.Scan(&org.ID, &org.Name, &org.Description, &org.CreatedAt, &org.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &org, nil
}
