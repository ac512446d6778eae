package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/mappers"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
	"github.com/tessera-live/tessera/internal/shared/db"
	"github.com/tessera-live/tessera/internal/shared/errors"
)

type ReservationRepositoryImpl struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) reservation.Repository {
	return &ReservationRepositoryImpl{db: db}
}

func (r *ReservationRepositoryImpl) FindByID(ctx context.Context, id string) (*reservation.TicketReservation, error) {
	var model models.TicketReservationModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reservation by ID: %w", err)
	}

	return mappers.ReservationToDomain(&model)
}

func (r *ReservationRepositoryImpl) FindPendingOfflinePayments(ctx context.Context, eventID uint) ([]*reservation.TicketReservation, error) {
	var records []*models.TicketReservationModel

	err := r.db.WithContext(ctx).
		Where("event_id = ? AND payment_status = ?", eventID, reservation.PaymentOfflinePending.String()).
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending offline payments: %w", err)
	}

	return mappers.ReservationsToDomain(records)
}

func (r *ReservationRepositoryImpl) UpdatePaymentStatus(ctx context.Context, id string, status reservation.PaymentStatus) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketReservationModel{}).
		Where("id = ?", id).
		Update("payment_status", status.String())
	if result.Error != nil {
		return fmt.Errorf("failed to update payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("reservation not found", id)
	}
	return nil
}
