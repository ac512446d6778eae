package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/shared/errors"
	"github.com/tessera-live/tessera/internal/shared/logger"
	"github.com/tessera-live/tessera/internal/shared/money"
)

// TransactionRunner executes a function atomically against the store.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OfflinePaymentService reconciles bank-transfer payments. Each status check
// and flip runs in its own transaction: once a reservation is COMPLETE it
// stays complete regardless of what happens to the rest of a surrounding
// batch.
type OfflinePaymentService struct {
	reservationRepo reservation.Repository
	transactionRepo reservation.TransactionRepository
	txRunner        TransactionRunner
	logger          logger.Interface
}

func NewOfflinePaymentService(
	reservationRepo reservation.Repository,
	transactionRepo reservation.TransactionRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) reservation.PaymentService {
	return &OfflinePaymentService{
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
		txRunner:        txRunner,
		logger:          logger,
	}
}

func (s *OfflinePaymentService) ConfirmOfflinePayment(ctx context.Context, ev *event.Event, reservationID string) error {
	err := s.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.loadAwaitingReservation(txCtx, ev, reservationID); err != nil {
			return err
		}
		return s.reservationRepo.UpdatePaymentStatus(txCtx, reservationID, reservation.PaymentComplete)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("offline payment marked complete",
		"event", ev.ShortName(),
		"reservation_id", reservationID,
	)
	return nil
}

func (s *OfflinePaymentService) ValidateAndConfirmOfflinePayment(ctx context.Context, reservationID string, ev *event.Event, amount decimal.Decimal) error {
	err := s.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.loadAwaitingReservation(txCtx, ev, reservationID); err != nil {
			return err
		}

		tx, err := s.transactionRepo.FindByReservationID(txCtx, reservationID)
		if err != nil {
			return err
		}
		if tx == nil {
			return errors.NewValidationError("reservation has no expected amount on record", reservationID)
		}

		// Compare in minor units: an amount with more precision than the
		// currency supports can never match and is rejected as malformed.
		paidMinor, err := money.UnitToMinor(amount, ev.Currency())
		if err != nil {
			return err
		}
		if paidMinor != tx.AmountMinor {
			expected := money.MinorToUnit(tx.AmountMinor, ev.Currency())
			return errors.NewValidationError("paid amount does not match the expected amount",
				"expected "+expected.String()+", got "+amount.String())
		}

		return s.reservationRepo.UpdatePaymentStatus(txCtx, reservationID, reservation.PaymentComplete)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("offline payment validated and marked complete",
		"event", ev.ShortName(),
		"reservation_id", reservationID,
		"amount", amount.String(),
	)
	return nil
}

func (s *OfflinePaymentService) DeleteOfflinePayment(ctx context.Context, ev *event.Event, reservationID string) error {
	err := s.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.loadAwaitingReservation(txCtx, ev, reservationID); err != nil {
			return err
		}
		return s.reservationRepo.UpdatePaymentStatus(txCtx, reservationID, reservation.PaymentCancelled)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("offline payment cancelled",
		"event", ev.ShortName(),
		"reservation_id", reservationID,
	)
	return nil
}

// loadAwaitingReservation fetches the reservation and checks that it belongs
// to the event and still awaits an offline payment.
func (s *OfflinePaymentService) loadAwaitingReservation(ctx context.Context, ev *event.Event, reservationID string) (*reservation.TicketReservation, error) {
	res, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res == nil || res.EventID() != ev.ID() {
		return nil, errors.NewNotFoundError("reservation not found", reservationID)
	}
	if !res.PaymentStatus().AwaitsOfflinePayment() {
		return nil, errors.NewConflictError("reservation is not awaiting an offline payment", reservationID)
	}
	return res, nil
}
