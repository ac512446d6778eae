package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/domain/event"
)

func TestNoSeatsAvailable_SoldOutBoundedCategory(t *testing.T) {
	begin := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)
	ev := newEvent(t, 1, 1, "sold-out-show", begin)

	categories := []*category.TicketCategory{newCategory(t, 10, 1, "General", 0, true, 10)}
	categoryStats := map[uint]category.StatisticView{
		10: {CategoryID: 10, Bounded: true, MaxTickets: 10, SoldTickets: 10, NotSoldTickets: 0},
	}
	eventStats := &event.StatisticView{EventID: 1, SoldTickets: 10, DynamicAllocation: 0}

	categoryRepo := &mockCategoryRepository{
		FindByEventIDFunc: func(ctx context.Context, eventID uint) ([]*category.TicketCategory, error) {
			return categories, nil
		},
		StatisticsByCategoryFunc: func(ctx context.Context, eventID uint) (map[uint]category.StatisticView, error) {
			return categoryStats, nil
		},
	}
	eventRepo := &mockEventRepository{
		StatisticsForFunc: func(ctx context.Context, eventID uint) (*event.StatisticView, error) {
			return eventStats, nil
		},
	}

	uc := NewNoSeatsAvailableUseCase(eventRepo, categoryRepo)

	soldOut, err := uc.Execute(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, soldOut)

	// Adding a second bounded category with capacity left flips the answer.
	categories = append(categories, newCategory(t, 11, 1, "Late", 1, true, 5))
	categoryStats[11] = category.StatisticView{CategoryID: 11, Bounded: true, MaxTickets: 5, SoldTickets: 2, NotSoldTickets: 3}

	soldOut, err = uc.Execute(context.Background(), ev)
	require.NoError(t, err)
	assert.False(t, soldOut)
}

func TestNoSeatsAvailable_UnboundedCategoryUsesDynamicAllocation(t *testing.T) {
	begin := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)
	ev := newEvent(t, 1, 1, "open-show", begin)

	categoryRepo := &mockCategoryRepository{
		FindByEventIDFunc: func(ctx context.Context, eventID uint) ([]*category.TicketCategory, error) {
			return []*category.TicketCategory{newCategory(t, 10, 1, "Open", 0, false, 0)}, nil
		},
		StatisticsByCategoryFunc: func(ctx context.Context, eventID uint) (map[uint]category.StatisticView, error) {
			return map[uint]category.StatisticView{
				10: {CategoryID: 10, Bounded: false},
			}, nil
		},
	}

	for _, tc := range []struct {
		name       string
		allocation int
		want       bool
	}{
		{"shared pool exhausted", 0, true},
		{"shared pool open", 4, false},
		{"shared pool oversold clamps to zero", -3, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			eventRepo := &mockEventRepository{
				StatisticsForFunc: func(ctx context.Context, eventID uint) (*event.StatisticView, error) {
					return &event.StatisticView{EventID: 1, DynamicAllocation: tc.allocation}, nil
				},
			}
			uc := NewNoSeatsAvailableUseCase(eventRepo, categoryRepo)

			soldOut, err := uc.Execute(context.Background(), ev)
			require.NoError(t, err)
			assert.Equal(t, tc.want, soldOut)
		})
	}
}

func TestNoSeatsAvailable_VacuouslyTrueWithoutCategories(t *testing.T) {
	begin := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)
	ev := newEvent(t, 1, 1, "empty-show", begin)

	categoryRepo := &mockCategoryRepository{}
	eventRepo := &mockEventRepository{
		StatisticsForFunc: func(ctx context.Context, eventID uint) (*event.StatisticView, error) {
			return &event.StatisticView{EventID: 1, DynamicAllocation: 100}, nil
		},
	}

	uc := NewNoSeatsAvailableUseCase(eventRepo, categoryRepo)

	soldOut, err := uc.Execute(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, soldOut, "an event without categories has nothing to sell")
}

func TestNoSeatsAvailable_MissingCategorySnapshotCountsAsZero(t *testing.T) {
	begin := time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)
	ev := newEvent(t, 1, 1, "fresh-show", begin)

	categoryRepo := &mockCategoryRepository{
		FindByEventIDFunc: func(ctx context.Context, eventID uint) ([]*category.TicketCategory, error) {
			return []*category.TicketCategory{newCategory(t, 10, 1, "General", 0, true, 10)}, nil
		},
		StatisticsByCategoryFunc: func(ctx context.Context, eventID uint) (map[uint]category.StatisticView, error) {
			return map[uint]category.StatisticView{}, nil
		},
	}
	eventRepo := &mockEventRepository{
		StatisticsForFunc: func(ctx context.Context, eventID uint) (*event.StatisticView, error) {
			return &event.StatisticView{EventID: 1, DynamicAllocation: 50}, nil
		},
	}

	uc := NewNoSeatsAvailableUseCase(eventRepo, categoryRepo)

	soldOut, err := uc.Execute(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, soldOut)
}
