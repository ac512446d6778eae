package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/shared/errors"
)

// GetEventStatisticUseCase loads a single event with its statistic snapshot.
//
// Trust boundary: unlike the by-name accessors this use case performs no
// ownership check. Callers must have authorized the event ID beforehand,
// typically by having obtained it from a guarded listing.
type GetEventStatisticUseCase struct {
	eventRepo event.Repository
}

func NewGetEventStatisticUseCase(eventRepo event.Repository) *GetEventStatisticUseCase {
	return &GetEventStatisticUseCase{eventRepo: eventRepo}
}

func (uc *GetEventStatisticUseCase) Execute(ctx context.Context, eventID uint) (*event.Statistic, error) {
	ev, err := uc.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, errors.NewNotFoundError("event not found")
	}

	view, err := uc.eventRepo.StatisticsFor(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &event.Statistic{Event: ev, View: view}, nil
}
