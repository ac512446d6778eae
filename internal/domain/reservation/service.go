package reservation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tessera-live/tessera/internal/domain/event"
)

// PaymentService is the mutating offline-payment subsystem. Each call is an
// independent external transaction: a confirmation that succeeded stays
// confirmed even if the caller later aborts a surrounding batch.
type PaymentService interface {
	// ConfirmOfflinePayment marks a pending offline payment as complete
	// without checking the paid amount.
	ConfirmOfflinePayment(ctx context.Context, ev *event.Event, reservationID string) error
	// ValidateAndConfirmOfflinePayment checks that the reservation awaits an
	// offline payment and that the reported amount matches the expected one
	// before confirming.
	ValidateAndConfirmOfflinePayment(ctx context.Context, reservationID string, ev *event.Event, amount decimal.Decimal) error
	// DeleteOfflinePayment cancels a pending offline payment.
	DeleteOfflinePayment(ctx context.Context, ev *event.Event, reservationID string) error
}
