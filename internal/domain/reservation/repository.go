package reservation

import "context"

// Repository is the reservation store.
type Repository interface {
	FindByID(ctx context.Context, id string) (*TicketReservation, error)
	// FindPendingOfflinePayments lists the reservations of an event still
	// awaiting manual confirmation.
	FindPendingOfflinePayments(ctx context.Context, eventID uint) ([]*TicketReservation, error)
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error
}

// TransactionRepository is the transaction store. FindByReservationID returns
// (nil, nil) when the reservation has no transaction.
type TransactionRepository interface {
	FindByReservationID(ctx context.Context, reservationID string) (*Transaction, error)
}
