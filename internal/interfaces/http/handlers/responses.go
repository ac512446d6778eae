package handlers

import (
	"time"

	"github.com/tessera-live/tessera/internal/application/statistics/dto"
	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/reservation"
)

// Response shapes for the statistics API. Domain entities keep their fields
// unexported, so every entity crossing the HTTP boundary is mapped here.

type EventResponse struct {
	ID             uint      `json:"id"`
	ShortName      string    `json:"short_name"`
	DisplayName    string    `json:"display_name"`
	OrganizationID uint      `json:"organization_id"`
	Location       string    `json:"location"`
	TimeZone       string    `json:"time_zone"`
	Currency       string    `json:"currency"`
	Begin          time.Time `json:"begin"`
	End            time.Time `json:"end"`
}

func toEventResponse(ev *event.Event) EventResponse {
	return EventResponse{
		ID:             ev.ID(),
		ShortName:      ev.ShortName(),
		DisplayName:    ev.DisplayName(),
		OrganizationID: ev.OrganizationID(),
		Location:       ev.Location(),
		TimeZone:       ev.TimeZone(),
		Currency:       ev.Currency(),
		Begin:          ev.Begin(),
		End:            ev.End(),
	}
}

type EventStatisticResponse struct {
	Event      EventResponse        `json:"event"`
	Statistics *event.StatisticView `json:"statistics"`
}

func toEventStatisticResponse(s event.Statistic) EventStatisticResponse {
	return EventStatisticResponse{
		Event:      toEventResponse(s.Event),
		Statistics: s.View,
	}
}

func toEventStatisticResponses(stats []event.Statistic) []EventStatisticResponse {
	responses := make([]EventStatisticResponse, 0, len(stats))
	for _, s := range stats {
		responses = append(responses, toEventStatisticResponse(s))
	}
	return responses
}

type TicketResponse struct {
	ID              uint    `json:"id"`
	UUID            string  `json:"uuid"`
	CategoryID      uint    `json:"category_id"`
	ReservationID   *string `json:"reservation_id,omitempty"`
	Status          string  `json:"status"`
	FinalPriceMinor int64   `json:"final_price_minor"`
}

type ReservationResponse struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"payment_status"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
}

type TicketWithStatisticResponse struct {
	Ticket      TicketResponse           `json:"ticket"`
	Reservation *ReservationResponse     `json:"reservation,omitempty"`
	Transaction *reservation.Transaction `json:"transaction,omitempty"`
}

type CategoryResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	MaxTickets int       `json:"max_tickets"`
	Bounded    bool      `json:"bounded"`
	Ordinal    int       `json:"ordinal"`
	Inception  time.Time `json:"inception"`
	Expiration time.Time `json:"expiration"`
	PriceMinor int64     `json:"price_minor"`
}

type CategoryWithStatisticResponse struct {
	Category      CategoryResponse              `json:"category"`
	Tickets       []TicketWithStatisticResponse `json:"tickets"`
	SpecialPrices []category.SpecialPrice       `json:"special_prices"`
	Descriptions  category.DescriptionSet       `json:"descriptions"`
	// Description is the single entry resolved for the requested language,
	// present only when the caller asked for one.
	Description string `json:"description,omitempty"`
	// ContentLanguages lists the languages the category is described in.
	ContentLanguages []string `json:"content_languages"`
}

func toCategoryWithStatisticResponse(c dto.TicketCategoryWithStatistic, lang string) CategoryWithStatisticResponse {
	tickets := make([]TicketWithStatisticResponse, 0, len(c.Tickets))
	for _, t := range c.Tickets {
		entry := TicketWithStatisticResponse{
			Ticket: TicketResponse{
				ID:              t.Ticket.ID(),
				UUID:            t.Ticket.UUID(),
				CategoryID:      t.Ticket.CategoryID(),
				ReservationID:   t.Ticket.ReservationID(),
				Status:          string(t.Ticket.Status()),
				FinalPriceMinor: t.Ticket.FinalPriceMinor(),
			},
			Transaction: t.Transaction,
		}
		if t.Reservation != nil {
			entry.Reservation = &ReservationResponse{
				ID:            t.Reservation.ID(),
				PaymentStatus: string(t.Reservation.PaymentStatus()),
				FullName:      t.Reservation.FullName(),
				Email:         t.Reservation.Email(),
			}
		}
		tickets = append(tickets, entry)
	}

	resolved := ""
	if lang != "" {
		resolved = c.Descriptions.ForLanguage(lang)
	}

	tags := c.Descriptions.Languages()
	languages := make([]string, 0, len(tags))
	for _, tag := range tags {
		languages = append(languages, tag.String())
	}

	return CategoryWithStatisticResponse{
		Category: CategoryResponse{
			ID:         c.Category.ID(),
			Name:       c.Category.Name(),
			MaxTickets: c.Category.MaxTickets(),
			Bounded:    c.Category.Bounded(),
			Ordinal:    c.Category.Ordinal(),
			Inception:  c.Category.Inception(),
			Expiration: c.Category.Expiration(),
			PriceMinor: c.Category.PriceMinor(),
		},
		Tickets:          tickets,
		SpecialPrices:    c.SpecialPrices,
		Descriptions:     c.Descriptions,
		Description:      resolved,
		ContentLanguages: languages,
	}
}

type EventWithStatisticsResponse struct {
	Event                EventResponse                   `json:"event"`
	Descriptions         map[string]string               `json:"descriptions"`
	Categories           []CategoryWithStatisticResponse `json:"ticket_categories"`
	ReleasedUnboundCount int                             `json:"released_unbound_count"`
}

func toEventWithStatisticsResponse(result *dto.EventWithStatistics, lang string) EventWithStatisticsResponse {
	categories := make([]CategoryWithStatisticResponse, 0, len(result.Categories))
	for _, c := range result.Categories {
		categories = append(categories, toCategoryWithStatisticResponse(c, lang))
	}

	return EventWithStatisticsResponse{
		Event:                toEventResponse(result.Event),
		Descriptions:         result.Descriptions,
		Categories:           categories,
		ReleasedUnboundCount: result.ReleasedUnboundCount,
	}
}
