package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

type ConfirmOfflinePaymentCommand struct {
	EventShortName string
	ReservationID  string
	Principal      string
}

// ConfirmOfflinePaymentUseCase confirms a single pending offline payment
// without amount validation. Used when an operator reconciles a transfer
// manually.
type ConfirmOfflinePaymentUseCase struct {
	orgDirectory   organization.Directory
	eventRepo      event.Repository
	paymentService reservation.PaymentService
	publisher      PaymentEventPublisher
	invalidator    StatisticsInvalidator
	logger         logger.Interface
}

func NewConfirmOfflinePaymentUseCase(
	orgDirectory organization.Directory,
	eventRepo event.Repository,
	paymentService reservation.PaymentService,
	publisher PaymentEventPublisher,
	invalidator StatisticsInvalidator,
	logger logger.Interface,
) *ConfirmOfflinePaymentUseCase {
	return &ConfirmOfflinePaymentUseCase{
		orgDirectory:   orgDirectory,
		eventRepo:      eventRepo,
		paymentService: paymentService,
		publisher:      publisher,
		invalidator:    invalidator,
		logger:         logger,
	}
}

func (uc *ConfirmOfflinePaymentUseCase) Execute(ctx context.Context, cmd ConfirmOfflinePaymentCommand) error {
	ev, err := resolveOwnedEvent(ctx, uc.eventRepo, uc.orgDirectory, cmd.EventShortName, cmd.Principal)
	if err != nil {
		return err
	}

	if err := uc.paymentService.ConfirmOfflinePayment(ctx, ev, cmd.ReservationID); err != nil {
		return err
	}

	uc.logger.Infow("offline payment confirmed",
		"event", ev.ShortName(),
		"reservation_id", cmd.ReservationID,
	)

	if uc.publisher != nil {
		if err := uc.publisher.PublishPaymentConfirmed(ctx, ev, cmd.ReservationID); err != nil {
			uc.logger.Warnw("failed to publish payment confirmation",
				"reservation_id", cmd.ReservationID,
				"error", err,
			)
		}
	}

	if uc.invalidator != nil {
		if err := uc.invalidator.Clear(ctx); err != nil {
			uc.logger.Warnw("failed to invalidate statistics cache", "error", err)
		}
	}
	return nil
}
