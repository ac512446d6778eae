package models

import "time"

type EventModel struct {
	ID             uint      `gorm:"primaryKey"`
	ShortName      string    `gorm:"uniqueIndex;size:128;not null"`
	DisplayName    string    `gorm:"size:255;not null"`
	OrganizationID uint      `gorm:"index;not null"`
	Location       string    `gorm:"size:255"`
	TimeZone       string    `gorm:"size:64;not null"`
	Currency       string    `gorm:"size:3;not null"`
	BeginAt        time.Time `gorm:"index;not null"`
	EndAt          time.Time `gorm:"not null"`
	// AvailableSeats is the total allocation the event was created with; the
	// dynamic remainder is derived from it in the statistics view.
	AvailableSeats int `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (EventModel) TableName() string {
	return "events"
}

type EventDescriptionModel struct {
	ID          uint   `gorm:"primaryKey"`
	EventID     uint   `gorm:"index:idx_event_description_lang,unique;not null"`
	Language    string `gorm:"index:idx_event_description_lang,unique;size:16;not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EventDescriptionModel) TableName() string {
	return "event_descriptions"
}
