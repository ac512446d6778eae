package mappers

import (
	"fmt"

	"github.com/tessera-live/tessera/internal/domain/ticket"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

func TicketToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:            t.ID(),
		UUID:          t.UUID(),
		EventID:       t.EventID(),
		CategoryID:    t.CategoryID(),
		ReservationID: t.ReservationID(),
		Status:        t.Status().String(),
		FinalPrice:    t.FinalPriceMinor(),
	}
}

func TicketToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := ticket.ReconstructTicket(
		model.ID,
		model.UUID,
		model.EventID,
		model.CategoryID,
		model.ReservationID,
		ticket.Status(model.Status),
		model.FinalPrice,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket record %d: %w", model.ID, err)
	}
	return t, nil
}

func TicketsToDomain(records []*models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(records))
	for _, record := range records {
		t, err := TicketToDomain(record)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
