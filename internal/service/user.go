package service

import "context"

// UserService refreshes user-facing denormalizations this subsystem does
// not own. The real implementation lives in the user management service.
type UserService interface {
	// RefreshCurrentOrganisationUnit recomputes the cached current
	// organisation unit derived from the person's employment bindings.
	RefreshCurrentOrganisationUnit(ctx context.Context, personID string) error
}

var _ UserService = (*NopUserService)(nil)

type NopUserService struct {
}

func NewNopUserService() *NopUserService {
	return &NopUserService{}
}

func (n *NopUserService) RefreshCurrentOrganisationUnit(ctx context.Context, personID string) error {
	return nil
}
