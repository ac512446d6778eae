package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/application/statistics/dto"
	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/reservation"
	"github.com/tessera-live/tessera/internal/domain/ticket"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

// LoadCategoriesWithStatisticsUseCase composes each category of an event with
// its modified tickets, reservations, special prices and description set.
type LoadCategoriesWithStatisticsUseCase struct {
	categoryRepo    category.Repository
	ticketRepo      ticket.Repository
	reservationRepo reservation.Repository
	transactionRepo reservation.TransactionRepository
	logger          logger.Interface
}

func NewLoadCategoriesWithStatisticsUseCase(
	categoryRepo category.Repository,
	ticketRepo ticket.Repository,
	reservationRepo reservation.Repository,
	transactionRepo reservation.TransactionRepository,
	logger logger.Interface,
) *LoadCategoriesWithStatisticsUseCase {
	return &LoadCategoriesWithStatisticsUseCase{
		categoryRepo:    categoryRepo,
		ticketRepo:      ticketRepo,
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

func (uc *LoadCategoriesWithStatisticsUseCase) Execute(ctx context.Context, ev *event.Event) ([]dto.TicketCategoryWithStatistic, error) {
	categories, err := uc.categoryRepo.FindByEventID(ctx, ev.ID())
	if err != nil {
		return nil, err
	}

	result := make([]dto.TicketCategoryWithStatistic, 0, len(categories))
	for _, cat := range categories {
		tickets, err := uc.loadModifiedTickets(ctx, ev, cat.ID())
		if err != nil {
			return nil, err
		}

		specialPrices, err := uc.categoryRepo.SpecialPricesByCategory(ctx, cat.ID())
		if err != nil {
			return nil, err
		}

		descriptions, err := uc.categoryRepo.DescriptionsFor(ctx, cat.ID())
		if err != nil {
			return nil, err
		}

		result = append(result, dto.TicketCategoryWithStatistic{
			Category:      cat,
			Tickets:       tickets,
			SpecialPrices: specialPrices,
			Event:         ev,
			Descriptions:  descriptions,
		})
	}

	dto.SortCategories(result)
	return result, nil
}

func (uc *LoadCategoriesWithStatisticsUseCase) loadModifiedTickets(ctx context.Context, ev *event.Event, categoryID uint) ([]dto.TicketWithStatistic, error) {
	tickets, err := uc.ticketRepo.FindAllModified(ctx, ev.ID(), categoryID)
	if err != nil {
		return nil, err
	}

	joined := make([]dto.TicketWithStatistic, 0, len(tickets))
	for _, t := range tickets {
		entry := dto.TicketWithStatistic{Ticket: t, TimeZone: ev.TimeZone()}

		if resID := t.ReservationID(); resID != nil {
			res, err := uc.reservationRepo.FindByID(ctx, *resID)
			if err != nil {
				return nil, err
			}
			entry.Reservation = res

			// A reservation without a transaction is legal.
			tx, err := uc.transactionRepo.FindByReservationID(ctx, *resID)
			if err != nil {
				return nil, err
			}
			entry.Transaction = tx
		}

		joined = append(joined, entry)
	}

	dto.SortTickets(joined)
	return joined, nil
}
