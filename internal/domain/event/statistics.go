package event

import "sort"

// StatisticView is the per-event snapshot produced by the storage layer.
// It is treated as an opaque input: the counts are trusted as given and two
// reads close in time may legitimately differ under concurrent reservations.
type StatisticView struct {
	EventID             uint `json:"event_id"`
	SoldTickets         int  `json:"sold_tickets"`
	CheckedInTickets    int  `json:"checked_in_tickets"`
	PendingTickets      int  `json:"pending_tickets"`
	NotSoldTickets      int  `json:"not_sold_tickets"`
	ReleasedTickets     int  `json:"released_tickets"`
	NotAllocatedTickets int  `json:"not_allocated_tickets"`
	// DynamicAllocation is the pool available to unbounded categories:
	// event seats not bound to any bounded category and not yet taken.
	DynamicAllocation int `json:"dynamic_allocation"`
}

// Statistic composes an event with its statistic snapshot.
type Statistic struct {
	Event *Event         `json:"event"`
	View  *StatisticView `json:"statistics"`
}

// Less defines the natural order of event statistics: event begin time
// ascending, ties broken by event ID. The order is total and deterministic;
// it feeds UI ranking and batch processing order.
func (s Statistic) Less(other Statistic) bool {
	if !s.Event.Begin().Equal(other.Event.Begin()) {
		return s.Event.Begin().Before(other.Event.Begin())
	}
	return s.Event.ID() < other.Event.ID()
}

// SortStatistics sorts statistics in place by their natural order.
func SortStatistics(stats []Statistic) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Less(stats[j])
	})
}
