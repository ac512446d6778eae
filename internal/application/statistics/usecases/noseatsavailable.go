package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/domain/event"
)

// NoSeatsAvailableUseCase evaluates whether every category of an event
// independently resolves to zero available seats. The quantifier is
// recomputed on each call from fresh snapshots; there is no incremental
// maintenance.
type NoSeatsAvailableUseCase struct {
	eventRepo    event.Repository
	categoryRepo category.Repository
}

func NewNoSeatsAvailableUseCase(eventRepo event.Repository, categoryRepo category.Repository) *NoSeatsAvailableUseCase {
	return &NoSeatsAvailableUseCase{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute returns true iff no category of the event has seats left. An event
// without categories has no seats to sell, so the answer is vacuously true.
func (uc *NoSeatsAvailableUseCase) Execute(ctx context.Context, ev *event.Event) (bool, error) {
	categoryStats, err := uc.categoryRepo.StatisticsByCategory(ctx, ev.ID())
	if err != nil {
		return false, err
	}

	eventStats, err := uc.eventRepo.StatisticsFor(ctx, ev.ID())
	if err != nil {
		return false, err
	}

	categories, err := uc.categoryRepo.FindByEventID(ctx, ev.ID())
	if err != nil {
		return false, err
	}

	for _, cat := range categories {
		var catView *category.StatisticView
		if view, ok := categoryStats[cat.ID()]; ok {
			catView = &view
		}
		if category.AvailableSeats(catView, eventStats) != 0 {
			return false, nil
		}
	}
	return true, nil
}
