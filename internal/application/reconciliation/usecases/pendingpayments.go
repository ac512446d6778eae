package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/domain/reservation"
)

type PendingPaymentsQuery struct {
	EventShortName string
	Principal      string
}

// PendingPaymentsUseCase lists the reservations of an event that still await
// an offline payment confirmation.
type PendingPaymentsUseCase struct {
	orgDirectory    organization.Directory
	eventRepo       event.Repository
	reservationRepo reservation.Repository
}

func NewPendingPaymentsUseCase(
	orgDirectory organization.Directory,
	eventRepo event.Repository,
	reservationRepo reservation.Repository,
) *PendingPaymentsUseCase {
	return &PendingPaymentsUseCase{
		orgDirectory:    orgDirectory,
		eventRepo:       eventRepo,
		reservationRepo: reservationRepo,
	}
}

func (uc *PendingPaymentsUseCase) Execute(ctx context.Context, query PendingPaymentsQuery) ([]*reservation.TicketReservation, error) {
	ev, err := resolveOwnedEvent(ctx, uc.eventRepo, uc.orgDirectory, query.EventShortName, query.Principal)
	if err != nil {
		return nil, err
	}
	return uc.reservationRepo.FindPendingOfflinePayments(ctx, ev.ID())
}
