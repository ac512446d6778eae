package ticket

import "context"

// Repository is the read-side ticket store.
type Repository interface {
	// FindAllModified returns the tickets of a category whose state was
	// touched by a reservation or administrative action, for the statistics
	// composition.
	FindAllModified(ctx context.Context, eventID, categoryID uint) ([]*Ticket, error)
	// CountReleasedUnbound counts released tickets of the event that are not
	// bound to any category allocation.
	CountReleasedUnbound(ctx context.Context, eventID uint) (int, error)
}
