package models

import "time"

type TicketModel struct {
	ID            uint    `gorm:"primaryKey"`
	UUID          string  `gorm:"uniqueIndex;size:36;not null"`
	EventID       uint    `gorm:"index:idx_ticket_event_category;not null"`
	CategoryID    uint    `gorm:"index:idx_ticket_event_category;not null"`
	ReservationID *string `gorm:"index;size:36"`
	Status        string  `gorm:"size:20;not null;index"`
	FinalPrice    int64   `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}
