package mock

import (
	"context"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
)

// UserRepo implements user persistence for tests.
type UserRepo struct {
	UserRecord *model.User

	CreateErr     error
	GetErr        error
	GetByEmailErr error
	UpdateRoleErr error

	Created          *model.User
	GetCalled        bool
	GetID            db.UUID
	GetByEmailCalled bool
	GetEmail         string
	UpdatedRoleID    db.UUID
	UpdatedRole      model.Role
}

func (m *UserRepo) Create(ctx context.Context, user *model.User) error {
	m.Created = user
	return m.CreateErr
}

func (m *UserRepo) GetByID(ctx context.Context, id db.UUID) (*model.User, error) {
	m.GetCalled = true
	m.GetID = id
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.UserRecord, nil
}

func (m *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	m.GetByEmailCalled = true
	m.GetEmail = email
	if m.GetByEmailErr != nil {
		return nil, m.GetByEmailErr
	}
	return m.UserRecord, nil
}

func (m *UserRepo) UpdateRole(ctx context.Context, id db.UUID, role model.Role) error {
	m.UpdatedRoleID = id
	m.UpdatedRole = role
	return m.UpdateRoleErr
}
