package organization

import "context"

// Directory resolves the organizations a principal belongs to.
type Directory interface {
	OrganizationsOf(ctx context.Context, principal string) ([]*Organization, error)
	FindByID(ctx context.Context, id uint) (*Organization, error)
}
