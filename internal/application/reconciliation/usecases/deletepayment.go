package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

type DeleteOfflinePaymentCommand struct {
	EventShortName string
	ReservationID  string
	Principal      string
}

// DeleteOfflinePaymentUseCase cancels a pending offline payment, releasing
// the reservation it belonged to.
type DeleteOfflinePaymentUseCase struct {
	orgDirectory   organization.Directory
	eventRepo      event.Repository
	paymentService reservation.PaymentService
	invalidator    StatisticsInvalidator
	logger         logger.Interface
}

func NewDeleteOfflinePaymentUseCase(
	orgDirectory organization.Directory,
	eventRepo event.Repository,
	paymentService reservation.PaymentService,
	invalidator StatisticsInvalidator,
	logger logger.Interface,
) *DeleteOfflinePaymentUseCase {
	return &DeleteOfflinePaymentUseCase{
		orgDirectory:   orgDirectory,
		eventRepo:      eventRepo,
		paymentService: paymentService,
		invalidator:    invalidator,
		logger:         logger,
	}
}

func (uc *DeleteOfflinePaymentUseCase) Execute(ctx context.Context, cmd DeleteOfflinePaymentCommand) error {
	ev, err := resolveOwnedEvent(ctx, uc.eventRepo, uc.orgDirectory, cmd.EventShortName, cmd.Principal)
	if err != nil {
		return err
	}

	if err := uc.paymentService.DeleteOfflinePayment(ctx, ev, cmd.ReservationID); err != nil {
		return err
	}

	uc.logger.Infow("offline payment deleted",
		"event", ev.ShortName(),
		"reservation_id", cmd.ReservationID,
	)

	if uc.invalidator != nil {
		if err := uc.invalidator.Clear(ctx); err != nil {
			uc.logger.Warnw("failed to invalidate statistics cache", "error", err)
		}
	}
	return nil
}
