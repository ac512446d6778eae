// Package reservation holds the ticket reservation entity, its payment
// transaction and the mutating offline-payment subsystem contract.
package reservation

import "fmt"

// PaymentStatus is the payment state of a reservation.
type PaymentStatus string

const (
	PaymentPending        PaymentStatus = "PENDING"
	PaymentInProgress     PaymentStatus = "IN_PAYMENT"
	PaymentOfflinePending PaymentStatus = "OFFLINE_PAYMENT"
	PaymentComplete       PaymentStatus = "COMPLETE"
	PaymentStuck          PaymentStatus = "STUCK"
	PaymentCancelled      PaymentStatus = "CANCELLED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentInProgress, PaymentOfflinePending,
		PaymentComplete, PaymentStuck, PaymentCancelled:
		return true
	}
	return false
}

// AwaitsOfflinePayment reports whether the reservation still waits for a
// manual bank-transfer confirmation.
func (s PaymentStatus) AwaitsOfflinePayment() bool {
	return s == PaymentOfflinePending
}

// TicketReservation groups the tickets of one purchase. Its identifier is an
// opaque string handed out to the buyer.
type TicketReservation struct {
	id            string
	eventID       uint
	paymentStatus PaymentStatus
	fullName      string
	email         string
}

func ReconstructReservation(
	id string,
	eventID uint,
	paymentStatus PaymentStatus,
	fullName string,
	email string,
) (*TicketReservation, error) {
	if id == "" {
		return nil, fmt.Errorf("reservation ID is required")
	}
	if eventID == 0 {
		return nil, fmt.Errorf("event ID is required")
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}
	return &TicketReservation{
		id:            id,
		eventID:       eventID,
		paymentStatus: paymentStatus,
		fullName:      fullName,
		email:         email,
	}, nil
}

func (r *TicketReservation) ID() string {
	return r.id
}

func (r *TicketReservation) EventID() uint {
	return r.eventID
}

func (r *TicketReservation) PaymentStatus() PaymentStatus {
	return r.paymentStatus
}

func (r *TicketReservation) FullName() string {
	return r.fullName
}

func (r *TicketReservation) Email() string {
	return r.email
}
