package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/reservation"
)

// PaymentEventPublisher announces completed offline-payment confirmations to
// downstream consumers (mail, exports). Publishing is best effort; a failed
// publish never rolls back a confirmation.
type PaymentEventPublisher interface {
	PublishPaymentConfirmed(ctx context.Context, ev *event.Event, reservationID string) error
}

// StatisticsInvalidator drops cached statistics listings after a write.
type StatisticsInvalidator interface {
	Clear(ctx context.Context) error
}

type BulkConfirmPaymentsExecutor interface {
	Execute(ctx context.Context, cmd BulkConfirmPaymentsCommand) ([]RowResult, error)
}

type ConfirmOfflinePaymentExecutor interface {
	Execute(ctx context.Context, cmd ConfirmOfflinePaymentCommand) error
}

type DeleteOfflinePaymentExecutor interface {
	Execute(ctx context.Context, cmd DeleteOfflinePaymentCommand) error
}

type PendingPaymentsExecutor interface {
	Execute(ctx context.Context, query PendingPaymentsQuery) ([]*reservation.TicketReservation, error)
}
