package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/shared/errors"
	"github.com/tessera-live/tessera/internal/shared/money"
)

type GrossIncomeResult struct {
	EventID  uint            `json:"event_id"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// GrossIncomeUseCase converts the stored minor-unit income total of an event
// into a major-unit decimal. The scaling is exact; repeated calls on the same
// input yield the identical amount.
type GrossIncomeUseCase struct {
	eventRepo event.Repository
}

func NewGrossIncomeUseCase(eventRepo event.Repository) *GrossIncomeUseCase {
	return &GrossIncomeUseCase{eventRepo: eventRepo}
}

func (uc *GrossIncomeUseCase) Execute(ctx context.Context, eventID uint) (*GrossIncomeResult, error) {
	ev, err := uc.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, errors.NewNotFoundError("event not found")
	}

	minor, err := uc.eventRepo.GrossIncomeMinorUnits(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &GrossIncomeResult{
		EventID:  eventID,
		Currency: ev.Currency(),
		Amount:   money.MinorToUnit(minor, ev.Currency()),
	}, nil
}
