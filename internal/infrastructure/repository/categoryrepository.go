package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/mappers"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) FindByEventID(ctx context.Context, eventID uint) ([]*category.TicketCategory, error) {
	var records []*models.TicketCategoryModel

	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories by event: %w", err)
	}

	return mappers.CategoriesToDomain(records)
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id uint) (*category.TicketCategory, error) {
	var model models.TicketCategoryModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return mappers.CategoryToDomain(&model)
}

type categoryStatsRow struct {
	CategoryID uint
	Bounded    bool
	MaxTickets int
	Sold       int
	CheckedIn  int
	Pending    int
}

const categoryStatisticsSQL = `
SELECT
  c.id AS category_id,
  c.bounded AS bounded,
  c.max_tickets AS max_tickets,
  COALESCE(SUM(CASE WHEN t.status IN ('ACQUIRED', 'TO_BE_PAID') THEN 1 ELSE 0 END), 0) AS sold,
  COALESCE(SUM(CASE WHEN t.status = 'CHECKED_IN' THEN 1 ELSE 0 END), 0) AS checked_in,
  COALESCE(SUM(CASE WHEN t.status = 'PENDING' THEN 1 ELSE 0 END), 0) AS pending
FROM ticket_categories c
LEFT JOIN tickets t ON t.category_id = c.id
WHERE c.event_id = ?
GROUP BY c.id, c.bounded, c.max_tickets
`

func (r *CategoryRepositoryImpl) StatisticsByCategory(ctx context.Context, eventID uint) (map[uint]category.StatisticView, error) {
	var rows []categoryStatsRow

	err := r.db.WithContext(ctx).
		Raw(categoryStatisticsSQL, eventID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category statistics: %w", err)
	}

	views := make(map[uint]category.StatisticView, len(rows))
	for _, row := range rows {
		view := category.StatisticView{
			CategoryID:       row.CategoryID,
			Bounded:          row.Bounded,
			MaxTickets:       row.MaxTickets,
			SoldTickets:      row.Sold,
			CheckedInTickets: row.CheckedIn,
			PendingTickets:   row.Pending,
		}
		if row.Bounded {
			// May go negative under transient oversell; availability
			// derivation clamps it.
			view.NotSoldTickets = row.MaxTickets - row.Sold - row.CheckedIn - row.Pending
		}
		views[row.CategoryID] = view
	}
	return views, nil
}

func (r *CategoryRepositoryImpl) DescriptionsFor(ctx context.Context, categoryID uint) (category.DescriptionSet, error) {
	var records []*models.TicketCategoryDescriptionModel

	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load category descriptions: %w", err)
	}

	descriptions := make(category.DescriptionSet, len(records))
	for _, record := range records {
		descriptions[record.Language] = record.Description
	}
	return descriptions, nil
}

func (r *CategoryRepositoryImpl) SpecialPricesByCategory(ctx context.Context, categoryID uint) ([]category.SpecialPrice, error) {
	var records []*models.SpecialPriceModel

	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list special prices: %w", err)
	}

	prices := make([]category.SpecialPrice, 0, len(records))
	for _, record := range records {
		prices = append(prices, mappers.SpecialPriceToDomain(record))
	}
	return prices, nil
}
