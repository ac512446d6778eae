package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/shared/logger"
	"github.com/tessera-live/tessera/internal/shared/money"
)

type BulkConfirmPaymentsCommand struct {
	EventShortName string
	Principal      string
	// Rows are pre-split upload lines: column 0 is the reservation
	// identifier, column 1 the paid amount in major units.
	Rows [][]string
}

// RowResult is the per-row outcome of a bulk confirmation. ReservationID is
// filled on a best-effort basis: rows rejected before the identifier could be
// read carry an empty one.
type RowResult struct {
	Success       bool   `json:"success"`
	ReservationID string `json:"reservation_id"`
	Message       string `json:"message,omitempty"`
}

// BulkConfirmPaymentsUseCase confirms a batch of offline payments from an
// uploaded bank statement. Rows are independent: a failing row never prevents
// the remaining rows from being processed, and confirmations already applied
// stay applied.
type BulkConfirmPaymentsUseCase struct {
	orgDirectory   organization.Directory
	eventRepo      event.Repository
	paymentService reservation.PaymentService
	publisher      PaymentEventPublisher
	invalidator    StatisticsInvalidator
	logger         logger.Interface
}

func NewBulkConfirmPaymentsUseCase(
	orgDirectory organization.Directory,
	eventRepo event.Repository,
	paymentService reservation.PaymentService,
	publisher PaymentEventPublisher,
	invalidator StatisticsInvalidator,
	logger logger.Interface,
) *BulkConfirmPaymentsUseCase {
	return &BulkConfirmPaymentsUseCase{
		orgDirectory:   orgDirectory,
		eventRepo:      eventRepo,
		paymentService: paymentService,
		publisher:      publisher,
		invalidator:    invalidator,
		logger:         logger,
	}
}

func (uc *BulkConfirmPaymentsUseCase) Execute(ctx context.Context, cmd BulkConfirmPaymentsCommand) ([]RowResult, error) {
	ev, err := resolveOwnedEvent(ctx, uc.eventRepo, uc.orgDirectory, cmd.EventShortName, cmd.Principal)
	if err != nil {
		return nil, err
	}

	results := make([]RowResult, 0, len(cmd.Rows))
	confirmed := 0
	for _, row := range cmd.Rows {
		result := uc.processRow(ctx, ev, row)
		if result.Success {
			confirmed++
		}
		results = append(results, result)
	}

	uc.logger.Infow("bulk payment confirmation processed",
		"event", ev.ShortName(),
		"rows", len(cmd.Rows),
		"confirmed", confirmed,
	)

	if confirmed > 0 && uc.invalidator != nil {
		if err := uc.invalidator.Clear(ctx); err != nil {
			uc.logger.Warnw("failed to invalidate statistics cache", "error", err)
		}
	}
	return results, nil
}

func (uc *BulkConfirmPaymentsUseCase) processRow(ctx context.Context, ev *event.Event, row []string) RowResult {
	if len(row) < 2 {
		return RowResult{Success: false, ReservationID: "", Message: "row must have at least reservation ID and amount"}
	}

	reservationID := row[0]
	amount, err := money.ParseAmount(row[1])
	if err != nil {
		return RowResult{Success: false, ReservationID: reservationID, Message: err.Error()}
	}

	if err := uc.paymentService.ValidateAndConfirmOfflinePayment(ctx, reservationID, ev, amount); err != nil {
		return RowResult{Success: false, ReservationID: reservationID, Message: err.Error()}
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishPaymentConfirmed(ctx, ev, reservationID); err != nil {
			uc.logger.Warnw("failed to publish payment confirmation",
				"reservation_id", reservationID,
				"error", err,
			)
		}
	}
	return RowResult{Success: true, ReservationID: reservationID}
}
