// Package event holds the event entity and its derived statistic views.
package event

import (
	"fmt"
	"time"
)

// Event belongs to exactly one organization. The organization reference is
// immutable once set.
type Event struct {
	id             uint
	shortName      string
	displayName    string
	organizationID uint
	location       string
	timeZone       string
	currency       string
	begin          time.Time
	end            time.Time
}

func NewEvent(
	shortName string,
	displayName string,
	organizationID uint,
	timeZone string,
	currency string,
	begin, end time.Time,
) (*Event, error) {
	if shortName == "" {
		return nil, fmt.Errorf("event short name is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}
	if end.Before(begin) {
		return nil, fmt.Errorf("event end cannot precede its begin")
	}
	return &Event{
		shortName:      shortName,
		displayName:    displayName,
		organizationID: organizationID,
		timeZone:       timeZone,
		currency:       currency,
		begin:          begin,
		end:            end,
	}, nil
}

// ReconstructEvent rebuilds an event from persisted state.
func ReconstructEvent(
	id uint,
	shortName string,
	displayName string,
	organizationID uint,
	location string,
	timeZone string,
	currency string,
	begin, end time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if shortName == "" {
		return nil, fmt.Errorf("event short name is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	return &Event{
		id:             id,
		shortName:      shortName,
		displayName:    displayName,
		organizationID: organizationID,
		location:       location,
		timeZone:       timeZone,
		currency:       currency,
		begin:          begin,
		end:            end,
	}, nil
}

func (e *Event) ID() uint {
	return e.id
}

// ShortName is the unique external identifier of the event.
func (e *Event) ShortName() string {
	return e.shortName
}

func (e *Event) DisplayName() string {
	return e.displayName
}

func (e *Event) OrganizationID() uint {
	return e.organizationID
}

func (e *Event) Location() string {
	return e.location
}

func (e *Event) TimeZone() string {
	return e.timeZone
}

func (e *Event) Currency() string {
	return e.currency
}

func (e *Event) Begin() time.Time {
	return e.begin
}

func (e *Event) End() time.Time {
	return e.end
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID already set")
	}
	e.id = id
	return nil
}
