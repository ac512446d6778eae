package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/shared/errors"
)

func TestGrossIncome_ExactMinorUnitScaling(t *testing.T) {
	begin := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)
	ev := newEvent(t, 1, 1, "gala", begin)

	eventRepo := &mockEventRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*event.Event, error) {
			return ev, nil
		},
		GrossIncomeMinorUnitsFunc: func(ctx context.Context, eventID uint) (int64, error) {
			return 150000, nil
		},
	}

	uc := NewGrossIncomeUseCase(eventRepo)

	result, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "CHF", result.Currency)
	assert.Equal(t, "1500.00", result.Amount.StringFixed(2))
}

func TestGrossIncome_ZeroIncome(t *testing.T) {
	begin := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)

	eventRepo := &mockEventRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*event.Event, error) {
			return newEvent(t, 1, 1, "free-show", begin), nil
		},
	}

	uc := NewGrossIncomeUseCase(eventRepo)

	result, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, result.Amount.IsZero())
}

func TestGrossIncome_UnknownEvent(t *testing.T) {
	uc := NewGrossIncomeUseCase(&mockEventRepository{})

	_, err := uc.Execute(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
