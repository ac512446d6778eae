package models

import "time"

type OrganizationModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:255;not null"`
	Description string `gorm:"type:text"`
	Email       string `gorm:"size:255;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

// OrganizationMembershipModel links an authenticated principal to the
// organizations it may administer.
type OrganizationMembershipModel struct {
	ID             uint   `gorm:"primaryKey"`
	Principal      string `gorm:"index:idx_membership_principal_org,unique;size:255;not null"`
	OrganizationID uint   `gorm:"index:idx_membership_principal_org,unique;not null"`
	CreatedAt      time.Time
}

func (OrganizationMembershipModel) TableName() string {
	return "organization_memberships"
}
