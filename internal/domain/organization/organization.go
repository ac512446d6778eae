// Package organization holds the tenant entity owning events. Organizations
// are the unit of access control: a principal may only observe or mutate
// events whose organization it belongs to.
package organization

import "fmt"

type Organization struct {
	id          uint
	name        string
	description string
	email       string
}

func NewOrganization(name, description, email string) (*Organization, error) {
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	return &Organization{
		name:        name,
		description: description,
		email:       email,
	}, nil
}

// ReconstructOrganization rebuilds an organization from persisted state.
func ReconstructOrganization(id uint, name, description, email string) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	return &Organization{
		id:          id,
		name:        name,
		description: description,
		email:       email,
	}, nil
}

func (o *Organization) ID() uint {
	return o.id
}

func (o *Organization) Name() string {
	return o.name
}

func (o *Organization) Description() string {
	return o.description
}

func (o *Organization) Email() string {
	return o.email
}

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID already set")
	}
	o.id = id
	return nil
}
