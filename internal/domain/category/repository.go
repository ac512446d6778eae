package category

import "context"

// Repository is the read-side category store.
type Repository interface {
	FindByEventID(ctx context.Context, eventID uint) ([]*TicketCategory, error)
	FindByID(ctx context.Context, id uint) (*TicketCategory, error)
	// StatisticsByCategory returns the per-category statistic snapshots of an
	// event keyed by category ID. Categories without a snapshot are absent.
	StatisticsByCategory(ctx context.Context, eventID uint) (map[uint]StatisticView, error)
	DescriptionsFor(ctx context.Context, categoryID uint) (DescriptionSet, error)
	SpecialPricesByCategory(ctx context.Context, categoryID uint) ([]SpecialPrice, error)
}
