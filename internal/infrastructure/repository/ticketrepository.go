package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tessera-live/tessera/internal/domain/ticket"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/mappers"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

type TicketRepositoryImpl struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) ticket.Repository {
	return &TicketRepositoryImpl{db: db}
}

// FindAllModified returns the tickets of a category that left the FREE state,
// ordered by ID.
func (r *TicketRepositoryImpl) FindAllModified(ctx context.Context, eventID, categoryID uint) ([]*ticket.Ticket, error) {
	var records []*models.TicketModel

	err := r.db.WithContext(ctx).
		Where("event_id = ? AND category_id = ? AND status NOT IN ('FREE', 'INVALIDATED')", eventID, categoryID).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list modified tickets: %w", err)
	}

	return mappers.TicketsToDomain(records)
}

// CountReleasedUnbound counts released tickets that no longer belong to a
// reservation.
func (r *TicketRepositoryImpl) CountReleasedUnbound(ctx context.Context, eventID uint) (int, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("event_id = ? AND status = 'RELEASED' AND reservation_id IS NULL", eventID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count released tickets: %w", err)
	}
	return int(count), nil
}
