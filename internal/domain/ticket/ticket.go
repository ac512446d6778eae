// Package ticket holds the ticket entity and its per-ticket statistic view.
package ticket

import "fmt"

// Status is the lifecycle state of a ticket.
type Status string

const (
	StatusFree        Status = "FREE"
	StatusPending     Status = "PENDING"
	StatusToBePaid    Status = "TO_BE_PAID"
	StatusAcquired    Status = "ACQUIRED"
	StatusCheckedIn   Status = "CHECKED_IN"
	StatusCancelled   Status = "CANCELLED"
	StatusReleased    Status = "RELEASED"
	StatusInvalidated Status = "INVALIDATED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusPending, StatusToBePaid, StatusAcquired,
		StatusCheckedIn, StatusCancelled, StatusReleased, StatusInvalidated:
		return true
	}
	return false
}

// Ticket belongs to a category within the same event. ReservationID is nil
// for unbound tickets; administrative actions outside this core may reassign
// a ticket between categories.
type Ticket struct {
	id            uint
	uuid          string
	eventID       uint
	categoryID    uint
	reservationID *string
	status        Status
	finalPrice    int64
}

func ReconstructTicket(
	id uint,
	uuid string,
	eventID uint,
	categoryID uint,
	reservationID *string,
	status Status,
	finalPrice int64,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if eventID == 0 {
		return nil, fmt.Errorf("event ID is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}
	return &Ticket{
		id:            id,
		uuid:          uuid,
		eventID:       eventID,
		categoryID:    categoryID,
		reservationID: reservationID,
		status:        status,
		finalPrice:    finalPrice,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UUID() string {
	return t.uuid
}

func (t *Ticket) EventID() uint {
	return t.eventID
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

// ReservationID returns nil for unbound tickets.
func (t *Ticket) ReservationID() *string {
	return t.reservationID
}

func (t *Ticket) Status() Status {
	return t.status
}

func (t *Ticket) FinalPriceMinor() int64 {
	return t.finalPrice
}
