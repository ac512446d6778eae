package category

import "github.com/tessera-live/tessera/internal/domain/event"

// StatisticView is the per-category snapshot produced by the storage layer.
type StatisticView struct {
	CategoryID       uint `json:"category_id"`
	Bounded          bool `json:"bounded"`
	MaxTickets       int  `json:"max_tickets"`
	SoldTickets      int  `json:"sold_tickets"`
	CheckedInTickets int  `json:"checked_in_tickets"`
	PendingTickets   int  `json:"pending_tickets"`
	// NotSoldTickets is the storage layer's capacity minus sold and pending
	// count for bounded categories. It may be negative in transient
	// oversell situations; callers must go through AvailableSeats.
	NotSoldTickets int `json:"not_sold_tickets"`
}

// AvailableSeats derives the remaining seats of a category at read time.
// Bounded categories answer from their own not-sold count, unbounded ones
// from the event's dynamic allocation pool. The result is never negative,
// and an absent snapshot counts as zero availability.
func AvailableSeats(categoryStats *StatisticView, eventStats *event.StatisticView) int {
	if categoryStats == nil || eventStats == nil {
		return 0
	}
	var seats int
	if categoryStats.Bounded {
		seats = categoryStats.NotSoldTickets
	} else {
		seats = eventStats.DynamicAllocation
	}
	if seats < 0 {
		return 0
	}
	return seats
}
