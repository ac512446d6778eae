// Package category holds the ticket category entity: a priced, allocated
// bucket of tickets within an event.
package category

import (
	"fmt"
	"time"
)

// TicketCategory belongs to exactly one event. Bounded categories carry their
// own ticket allocation; unbounded categories draw from the event's dynamic
// allocation pool.
type TicketCategory struct {
	id         uint
	eventID    uint
	name       string
	maxTickets int
	bounded    bool
	ordinal    int
	inception  time.Time
	expiration time.Time
	priceMinor int64
}

func NewTicketCategory(
	eventID uint,
	name string,
	maxTickets int,
	bounded bool,
	ordinal int,
	inception, expiration time.Time,
	priceMinor int64,
) (*TicketCategory, error) {
	if eventID == 0 {
		return nil, fmt.Errorf("event ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if bounded && maxTickets <= 0 {
		return nil, fmt.Errorf("bounded category needs a positive ticket allocation")
	}
	return &TicketCategory{
		eventID:    eventID,
		name:       name,
		maxTickets: maxTickets,
		bounded:    bounded,
		ordinal:    ordinal,
		inception:  inception,
		expiration: expiration,
		priceMinor: priceMinor,
	}, nil
}

// ReconstructTicketCategory rebuilds a category from persisted state.
func ReconstructTicketCategory(
	id uint,
	eventID uint,
	name string,
	maxTickets int,
	bounded bool,
	ordinal int,
	inception, expiration time.Time,
	priceMinor int64,
) (*TicketCategory, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if eventID == 0 {
		return nil, fmt.Errorf("event ID is required")
	}
	return &TicketCategory{
		id:         id,
		eventID:    eventID,
		name:       name,
		maxTickets: maxTickets,
		bounded:    bounded,
		ordinal:    ordinal,
		inception:  inception,
		expiration: expiration,
		priceMinor: priceMinor,
	}, nil
}

func (c *TicketCategory) ID() uint {
	return c.id
}

func (c *TicketCategory) EventID() uint {
	return c.eventID
}

func (c *TicketCategory) Name() string {
	return c.name
}

func (c *TicketCategory) MaxTickets() int {
	return c.maxTickets
}

func (c *TicketCategory) Bounded() bool {
	return c.bounded
}

// Ordinal is the display order within the event.
func (c *TicketCategory) Ordinal() int {
	return c.ordinal
}

func (c *TicketCategory) Inception() time.Time {
	return c.inception
}

func (c *TicketCategory) Expiration() time.Time {
	return c.expiration
}

func (c *TicketCategory) PriceMinor() int64 {
	return c.priceMinor
}

func (c *TicketCategory) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID already set")
	}
	c.id = id
	return nil
}
