package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/application/statistics/dto"
	"github.com/tessera-live/tessera/internal/domain/event"
)

// EventStatisticsCache is the optional read-through cache for the unfiltered
// event statistics listing, keyed by principal identity. Get returns
// (nil, false, nil) on a miss. Implementations must drop entries whenever
// underlying event, ticket or reservation state changes (invalidate-on-write).
type EventStatisticsCache interface {
	Get(ctx context.Context, principal string) ([]event.Statistic, bool, error)
	Set(ctx context.Context, principal string, stats []event.Statistic) error
	// Clear drops every cached listing. Writers call it after any
	// offline-payment confirmation or deletion.
	Clear(ctx context.Context) error
}

type ListEventStatisticsExecutor interface {
	Execute(ctx context.Context, query ListEventStatisticsQuery) ([]event.Statistic, error)
}

type GetEventStatisticExecutor interface {
	Execute(ctx context.Context, eventID uint) (*event.Statistic, error)
}

type LoadCategoriesWithStatisticsExecutor interface {
	Execute(ctx context.Context, ev *event.Event) ([]dto.TicketCategoryWithStatistic, error)
}

type GetSingleEventWithStatisticsExecutor interface {
	Execute(ctx context.Context, query GetSingleEventQuery) (*dto.EventWithStatistics, error)
}

type GrossIncomeExecutor interface {
	Execute(ctx context.Context, eventID uint) (*GrossIncomeResult, error)
}

type NoSeatsAvailableExecutor interface {
	Execute(ctx context.Context, ev *event.Event) (bool, error)
}
