package mappers

import (
	"fmt"

	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

func OrganizationToModel(org *organization.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:          org.ID(),
		Name:        org.Name(),
		Description: org.Description(),
		Email:       org.Email(),
	}
}

func OrganizationToDomain(model *models.OrganizationModel) (*organization.Organization, error) {
	org, err := organization.ReconstructOrganization(model.ID, model.Name, model.Description, model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid organization record %d: %w", model.ID, err)
	}
	return org, nil
}
