package reservation

import "time"

// Transaction is the payment record of a reservation. A reservation carries
// at most one; reservations without a transaction are legal.
type Transaction struct {
	ID            uint      `json:"id"`
	ReservationID string    `json:"reservation_id"`
	AmountMinor   int64     `json:"amount_minor"`
	Currency      string    `json:"currency"`
	Source        string    `json:"source"`
	Timestamp     time.Time `json:"timestamp"`
}
