package mappers

import (
	"fmt"

	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

func CategoryToModel(cat *category.TicketCategory) *models.TicketCategoryModel {
	return &models.TicketCategoryModel{
		ID:           cat.ID(),
		EventID:      cat.EventID(),
		Name:         cat.Name(),
		MaxTickets:   cat.MaxTickets(),
		Bounded:      cat.Bounded(),
		Ordinal:      cat.Ordinal(),
		InceptionAt:  cat.Inception(),
		ExpirationAt: cat.Expiration(),
		PriceMinor:   cat.PriceMinor(),
	}
}

func CategoryToDomain(model *models.TicketCategoryModel) (*category.TicketCategory, error) {
	cat, err := category.ReconstructTicketCategory(
		model.ID,
		model.EventID,
		model.Name,
		model.MaxTickets,
		model.Bounded,
		model.Ordinal,
		model.InceptionAt,
		model.ExpirationAt,
		model.PriceMinor,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket category record %d: %w", model.ID, err)
	}
	return cat, nil
}

func CategoriesToDomain(records []*models.TicketCategoryModel) ([]*category.TicketCategory, error) {
	categories := make([]*category.TicketCategory, 0, len(records))
	for _, record := range records {
		cat, err := CategoryToDomain(record)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func SpecialPriceToDomain(model *models.SpecialPriceModel) category.SpecialPrice {
	return category.SpecialPrice{
		ID:         model.ID,
		CategoryID: model.CategoryID,
		Code:       model.Code,
		PriceMinor: model.PriceMinor,
		Status:     category.SpecialPriceStatus(model.Status),
	}
}
