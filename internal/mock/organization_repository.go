package mock

import (
	"context"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
)

// OrganizationRepo implements organization persistence for tests.
type OrganizationRepo struct {
	OrgRecord *model.Organization

	CreateErr error
	GetErr    error

	Created   *model.Organization
	GetCalled bool
}

func (m *OrganizationRepo) Create(ctx context.Context, org *model.Organization) error {
	m.Created = org
	return m.CreateErr
}

func (m *OrganizationRepo) GetByID(ctx context.Context, id db.UUID) (*model.Organization, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.OrgRecord, nil
}
