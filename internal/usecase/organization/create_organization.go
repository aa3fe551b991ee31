package organization

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type organizationCreatorSrv struct {
	orgs    port.OrganizationRepository
	genUUID port.UUIDGen
}

var _ port.OrganizationCreator = (*organizationCreatorSrv)(nil)

func NewOrganizationCreator(orgs port.OrganizationRepository, genUUID port.UUIDGen) port.OrganizationCreator {
	return &organizationCreatorSrv{orgs: orgs, genUUID: genUUID}
}

// CreateOrganization records a new organization. Admin only; names are unique.
func (s *organizationCreatorSrv) CreateOrganization(ctx context.Context, requester model.Requester, in port.CreateOrganizationInput) (*model.Organization, error) {
	if requester.Role != model.RoleAdmin {
		return nil, apperr.AccessDenied("only admins may create organizations")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	org := &model.Organization{
		ID:          s.genUUID(),
		Name:        name,
		Description: in.Description,
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		if errors.Is(err, port.ErrDuplicate) {
			return nil, apperr.Conflict("an organization named %q already exists", name)
		}
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	logger.Infof(ctx, "created organization #%s (%q)", org.ID, name)
	return org, nil
}
