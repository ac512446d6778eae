package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/mappers"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
	"github.com/tessera-live/tessera/internal/shared/db"
)

type TransactionRepositoryImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) reservation.TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

// FindByReservationID returns nil without error when the reservation has no
// recorded transaction.
func (r *TransactionRepositoryImpl) FindByReservationID(ctx context.Context, reservationID string) (*reservation.Transaction, error) {
	var model models.TransactionModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("reservation_id = ?", reservationID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction by reservation: %w", err)
	}

	return mappers.TransactionToDomain(&model), nil
}
