package mappers

import (
	"fmt"

	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

func ReservationToModel(r *reservation.TicketReservation) *models.TicketReservationModel {
	return &models.TicketReservationModel{
		ID:            r.ID(),
		EventID:       r.EventID(),
		PaymentStatus: r.PaymentStatus().String(),
		FullName:      r.FullName(),
		Email:         r.Email(),
	}
}

func ReservationToDomain(model *models.TicketReservationModel) (*reservation.TicketReservation, error) {
	r, err := reservation.ReconstructReservation(
		model.ID,
		model.EventID,
		reservation.PaymentStatus(model.PaymentStatus),
		model.FullName,
		model.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation record %s: %w", model.ID, err)
	}
	return r, nil
}

func ReservationsToDomain(records []*models.TicketReservationModel) ([]*reservation.TicketReservation, error) {
	reservations := make([]*reservation.TicketReservation, 0, len(records))
	for _, record := range records {
		r, err := ReservationToDomain(record)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}
	return reservations, nil
}

func TransactionToDomain(model *models.TransactionModel) *reservation.Transaction {
	return &reservation.Transaction{
		ID:            model.ID,
		ReservationID: model.ReservationID,
		AmountMinor:   model.AmountMinor,
		Currency:      model.Currency,
		Source:        model.Source,
		Timestamp:     model.Timestamp,
	}
}
