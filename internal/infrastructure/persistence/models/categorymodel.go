package models

import "time"

type TicketCategoryModel struct {
	ID           uint      `gorm:"primaryKey"`
	EventID      uint      `gorm:"index;not null"`
	Name         string    `gorm:"size:255;not null"`
	MaxTickets   int       `gorm:"not null;default:0"`
	Bounded      bool      `gorm:"not null;default:true"`
	Ordinal      int       `gorm:"not null;default:0"`
	InceptionAt  time.Time `gorm:"not null"`
	ExpirationAt time.Time `gorm:"not null"`
	PriceMinor   int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TicketCategoryModel) TableName() string {
	return "ticket_categories"
}

type TicketCategoryDescriptionModel struct {
	ID          uint   `gorm:"primaryKey"`
	CategoryID  uint   `gorm:"index:idx_category_description_lang,unique;not null"`
	Language    string `gorm:"index:idx_category_description_lang,unique;size:16;not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TicketCategoryDescriptionModel) TableName() string {
	return "ticket_category_descriptions"
}

type SpecialPriceModel struct {
	ID         uint   `gorm:"primaryKey"`
	CategoryID uint   `gorm:"index;not null"`
	Code       string `gorm:"uniqueIndex;size:64;not null"`
	PriceMinor int64  `gorm:"not null;default:0"`
	Status     string `gorm:"size:20;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SpecialPriceModel) TableName() string {
	return "special_prices"
}
