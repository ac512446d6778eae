package event

import "context"

// Repository is the read-side event store. Statistic views are computed by
// the storage layer; this core never recomputes them.
type Repository interface {
	FindByOrganizationID(ctx context.Context, organizationID uint) ([]*Event, error)
	FindByID(ctx context.Context, id uint) (*Event, error)
	FindByShortName(ctx context.Context, shortName string) (*Event, error)
	StatisticsFor(ctx context.Context, eventID uint) (*StatisticView, error)
	StatisticsForIDs(ctx context.Context, eventIDs []uint) ([]StatisticView, error)
	// GrossIncomeMinorUnits returns the summed transaction amounts for the
	// event, in the event currency's minor unit.
	GrossIncomeMinorUnits(ctx context.Context, eventID uint) (int64, error)
	// DescriptionsFor returns the per-language event descriptions keyed by
	// BCP 47 language tag.
	DescriptionsFor(ctx context.Context, eventID uint) (map[string]string, error)
}
