package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/shared/errors"
)

func TestConfirmOfflinePayment_ConfirmsPublishesInvalidates(t *testing.T) {
	orgDir, eventRepo, ev := ownedEventSetup(t)

	var confirmedID string
	paymentService := &mockPaymentService{
		ConfirmOfflinePaymentFunc: func(ctx context.Context, gotEv *event.Event, reservationID string) error {
			assert.Equal(t, ev, gotEv)
			confirmedID = reservationID
			return nil
		},
	}
	published := false
	publisher := &mockPublisher{
		PublishPaymentConfirmedFunc: func(ctx context.Context, ev *event.Event, reservationID string) error {
			published = true
			return nil
		},
	}
	cleared := false
	invalidator := &mockInvalidator{ClearFunc: func(ctx context.Context) error {
		cleared = true
		return nil
	}}

	uc := NewConfirmOfflinePaymentUseCase(orgDir, eventRepo, paymentService, publisher, invalidator, &mockLogger{})

	err := uc.Execute(context.Background(), ConfirmOfflinePaymentCommand{
		EventShortName: "summer-fest",
		ReservationID:  "R1",
		Principal:      "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "R1", confirmedID)
	assert.True(t, published)
	assert.True(t, cleared)
}

func TestConfirmOfflinePayment_ServiceFailureSkipsPublishAndCache(t *testing.T) {
	orgDir, eventRepo, _ := ownedEventSetup(t)

	paymentService := &mockPaymentService{
		ConfirmOfflinePaymentFunc: func(ctx context.Context, ev *event.Event, reservationID string) error {
			return errors.NewConflictError("reservation not awaiting offline payment")
		},
	}
	published := false
	publisher := &mockPublisher{PublishPaymentConfirmedFunc: func(ctx context.Context, ev *event.Event, reservationID string) error {
		published = true
		return nil
	}}
	cleared := false
	invalidator := &mockInvalidator{ClearFunc: func(ctx context.Context) error {
		cleared = true
		return nil
	}}

	uc := NewConfirmOfflinePaymentUseCase(orgDir, eventRepo, paymentService, publisher, invalidator, &mockLogger{})

	err := uc.Execute(context.Background(), ConfirmOfflinePaymentCommand{
		EventShortName: "summer-fest",
		ReservationID:  "R1",
		Principal:      "alice",
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.False(t, published)
	assert.False(t, cleared)
}

func TestConfirmOfflinePayment_PublishFailureDoesNotFailConfirmation(t *testing.T) {
	orgDir, eventRepo, _ := ownedEventSetup(t)

	publisher := &mockPublisher{PublishPaymentConfirmedFunc: func(ctx context.Context, ev *event.Event, reservationID string) error {
		return stderrors.New("broker unreachable")
	}}

	uc := NewConfirmOfflinePaymentUseCase(orgDir, eventRepo, &mockPaymentService{}, publisher, nil, &mockLogger{})

	err := uc.Execute(context.Background(), ConfirmOfflinePaymentCommand{
		EventShortName: "summer-fest",
		ReservationID:  "R1",
		Principal:      "alice",
	})
	assert.NoError(t, err, "a confirmed payment stays confirmed even when the announcement fails")
}

func TestDeleteOfflinePayment_DeletesAndInvalidates(t *testing.T) {
	orgDir, eventRepo, _ := ownedEventSetup(t)

	var deletedID string
	paymentService := &mockPaymentService{
		DeleteOfflinePaymentFunc: func(ctx context.Context, ev *event.Event, reservationID string) error {
			deletedID = reservationID
			return nil
		},
	}
	cleared := false
	invalidator := &mockInvalidator{ClearFunc: func(ctx context.Context) error {
		cleared = true
		return nil
	}}

	uc := NewDeleteOfflinePaymentUseCase(orgDir, eventRepo, paymentService, invalidator, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteOfflinePaymentCommand{
		EventShortName: "summer-fest",
		ReservationID:  "R1",
		Principal:      "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "R1", deletedID)
	assert.True(t, cleared)
}

func TestDeleteOfflinePayment_GuardRejectsForeignPrincipal(t *testing.T) {
	_, eventRepo, _ := ownedEventSetup(t)
	orgDir := &mockOrgDirectory{
		OrganizationsOfFunc: func(ctx context.Context, principal string) ([]*organization.Organization, error) {
			return nil, nil
		},
	}

	uc := NewDeleteOfflinePaymentUseCase(orgDir, eventRepo, &mockPaymentService{}, nil, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteOfflinePaymentCommand{
		EventShortName: "summer-fest",
		ReservationID:  "R1",
		Principal:      "mallory",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotAuthorizedError(err))
}

func TestPendingPayments_ListsAwaitingReservations(t *testing.T) {
	orgDir, eventRepo, ev := ownedEventSetup(t)

	res, err := reservation.ReconstructReservation("R1", ev.ID(), reservation.PaymentOfflinePending, "Ada", "ada@example.org")
	require.NoError(t, err)

	reservationRepo := &mockReservationRepository{
		FindPendingOfflinePaymentsFunc: func(ctx context.Context, eventID uint) ([]*reservation.TicketReservation, error) {
			assert.Equal(t, ev.ID(), eventID)
			return []*reservation.TicketReservation{res}, nil
		},
	}

	uc := NewPendingPaymentsUseCase(orgDir, eventRepo, reservationRepo)

	pending, err := uc.Execute(context.Background(), PendingPaymentsQuery{EventShortName: "summer-fest", Principal: "alice"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "R1", pending[0].ID())
}
