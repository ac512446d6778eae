package models

import "time"

type TicketReservationModel struct {
	ID            string `gorm:"primaryKey;size:36"`
	EventID       uint   `gorm:"index;not null"`
	PaymentStatus string `gorm:"size:20;not null;index"`
	FullName      string `gorm:"size:255"`
	Email         string `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TicketReservationModel) TableName() string {
	return "ticket_reservations"
}

type TransactionModel struct {
	ID            uint      `gorm:"primaryKey"`
	ReservationID string    `gorm:"uniqueIndex;size:36;not null"`
	AmountMinor   int64     `gorm:"not null"`
	Currency      string    `gorm:"size:3;not null"`
	Source        string    `gorm:"size:32;not null"`
	Timestamp     time.Time `gorm:"not null"`
	CreatedAt     time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}
