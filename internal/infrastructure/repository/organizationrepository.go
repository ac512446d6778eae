package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/mappers"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

type OrganizationRepositoryImpl struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) organization.Directory {
	return &OrganizationRepositoryImpl{db: db}
}

// OrganizationsOf returns the organizations the principal is a member of,
// in membership insertion order.
func (r *OrganizationRepositoryImpl) OrganizationsOf(ctx context.Context, principal string) ([]*organization.Organization, error) {
	var records []*models.OrganizationModel

	err := r.db.WithContext(ctx).
		Joins("JOIN organization_memberships m ON m.organization_id = organizations.id").
		Where("m.principal = ?", principal).
		Order("m.id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations for principal: %w", err)
	}

	orgs := make([]*organization.Organization, 0, len(records))
	for _, record := range records {
		org, err := mappers.OrganizationToDomain(record)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

func (r *OrganizationRepositoryImpl) FindByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization by ID: %w", err)
	}

	return mappers.OrganizationToDomain(&model)
}
