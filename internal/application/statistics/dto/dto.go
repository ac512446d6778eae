// Package dto holds the composite statistic views the aggregation use cases
// expose upward. These are the stable shapes an API layer serializes.
package dto

import (
	"sort"

	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/domain/ticket"
)

// TicketWithStatistic joins a modified ticket with its reservation and the
// optional payment transaction.
type TicketWithStatistic struct {
	Ticket      *ticket.Ticket                 `json:"ticket"`
	Reservation *reservation.TicketReservation `json:"reservation"`
	Transaction *reservation.Transaction       `json:"transaction,omitempty"`
	TimeZone    string                         `json:"time_zone"`
}

// TicketCategoryWithStatistic composes a category with its modified tickets,
// special prices, owning event and description set.
type TicketCategoryWithStatistic struct {
	Category      *category.TicketCategory `json:"category"`
	Tickets       []TicketWithStatistic    `json:"tickets"`
	SpecialPrices []category.SpecialPrice  `json:"special_prices"`
	Event         *event.Event             `json:"-"`
	Descriptions  category.DescriptionSet  `json:"descriptions"`
}

// ContainsTickets reports whether any modified ticket is attached.
func (c TicketCategoryWithStatistic) ContainsTickets() bool {
	return len(c.Tickets) > 0
}

// SortCategories orders composites by category display order, ties broken by
// category ID. Deterministic, stable.
func SortCategories(categories []TicketCategoryWithStatistic) {
	sort.SliceStable(categories, func(i, j int) bool {
		a, b := categories[i].Category, categories[j].Category
		if a.Ordinal() != b.Ordinal() {
			return a.Ordinal() < b.Ordinal()
		}
		return a.ID() < b.ID()
	})
}

// SortTickets orders joined tickets by ticket ID ascending.
func SortTickets(tickets []TicketWithStatistic) {
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].Ticket.ID() < tickets[j].Ticket.ID()
	})
}

// EventWithStatistics is the deprecated single-event composite, kept because
// the admin UI still consumes it.
type EventWithStatistics struct {
	Event                *event.Event                  `json:"event"`
	Descriptions         map[string]string             `json:"descriptions"`
	Categories           []TicketCategoryWithStatistic `json:"ticket_categories"`
	ReleasedUnboundCount int                           `json:"released_unbound_count"`
}
