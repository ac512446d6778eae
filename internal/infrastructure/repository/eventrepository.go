package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/mappers"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

type EventRepositoryImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) event.Repository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) FindByOrganizationID(ctx context.Context, organizationID uint) ([]*event.Event, error) {
	var records []*models.EventModel

	err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events by organization: %w", err)
	}

	return mappers.EventsToDomain(records)
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uint) (*event.Event, error) {
	var model models.EventModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}

	return mappers.EventToDomain(&model)
}

func (r *EventRepositoryImpl) FindByShortName(ctx context.Context, shortName string) (*event.Event, error) {
	var model models.EventModel

	err := r.db.WithContext(ctx).
		Where("short_name = ?", shortName).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event by short name: %w", err)
	}

	return mappers.EventToDomain(&model)
}

// eventStatsRow is the raw aggregation scanned from the statistics query.
type eventStatsRow struct {
	EventID         uint
	AvailableSeats  int
	Sold            int
	CheckedIn       int
	Pending         int
	Released        int
	BoundedInUse    int
	UnboundedInUse  int
	BoundedCapacity int
}

// eventStatisticsSQL aggregates ticket counts per event in one pass. Ticket
// states follow the lifecycle: ACQUIRED and TO_BE_PAID count as sold,
// CHECKED_IN and PENDING are tracked separately, everything else is free
// or released.
const eventStatisticsSQL = `
SELECT
  e.id AS event_id,
  e.available_seats AS available_seats,
  COALESCE(SUM(CASE WHEN t.status IN ('ACQUIRED', 'TO_BE_PAID') THEN 1 ELSE 0 END), 0) AS sold,
  COALESCE(SUM(CASE WHEN t.status = 'CHECKED_IN' THEN 1 ELSE 0 END), 0) AS checked_in,
  COALESCE(SUM(CASE WHEN t.status = 'PENDING' THEN 1 ELSE 0 END), 0) AS pending,
  COALESCE(SUM(CASE WHEN t.status = 'RELEASED' THEN 1 ELSE 0 END), 0) AS released,
  COALESCE(SUM(CASE WHEN c.bounded = TRUE AND t.status IN ('ACQUIRED', 'TO_BE_PAID', 'CHECKED_IN', 'PENDING') THEN 1 ELSE 0 END), 0) AS bounded_in_use,
  COALESCE(SUM(CASE WHEN c.bounded = FALSE AND t.status IN ('ACQUIRED', 'TO_BE_PAID', 'CHECKED_IN', 'PENDING') THEN 1 ELSE 0 END), 0) AS unbounded_in_use,
  (SELECT COALESCE(SUM(cc.max_tickets), 0) FROM ticket_categories cc WHERE cc.event_id = e.id AND cc.bounded = TRUE) AS bounded_capacity
FROM events e
LEFT JOIN tickets t ON t.event_id = e.id
LEFT JOIN ticket_categories c ON c.id = t.category_id
WHERE e.id IN ?
GROUP BY e.id, e.available_seats
`

func (r *EventRepositoryImpl) StatisticsFor(ctx context.Context, eventID uint) (*event.StatisticView, error) {
	views, err := r.StatisticsForIDs(ctx, []uint{eventID})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}

func (r *EventRepositoryImpl) StatisticsForIDs(ctx context.Context, eventIDs []uint) ([]event.StatisticView, error) {
	if len(eventIDs) == 0 {
		return []event.StatisticView{}, nil
	}

	var rows []eventStatsRow
	err := r.db.WithContext(ctx).
		Raw(eventStatisticsSQL, eventIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate event statistics: %w", err)
	}

	views := make([]event.StatisticView, 0, len(rows))
	for _, row := range rows {
		views = append(views, buildStatisticView(row))
	}
	return views, nil
}

func buildStatisticView(row eventStatsRow) event.StatisticView {
	notAllocated := row.AvailableSeats - row.BoundedCapacity
	if notAllocated < 0 {
		notAllocated = 0
	}
	notSold := row.BoundedCapacity - row.BoundedInUse
	if notSold < 0 {
		notSold = 0
	}

	return event.StatisticView{
		EventID:             row.EventID,
		SoldTickets:         row.Sold,
		CheckedInTickets:    row.CheckedIn,
		PendingTickets:      row.Pending,
		NotSoldTickets:      notSold,
		ReleasedTickets:     row.Released,
		NotAllocatedTickets: notAllocated,
		DynamicAllocation:   notAllocated - row.UnboundedInUse,
	}
}

// GrossIncomeMinorUnits sums the recorded transactions of completed
// reservations. The total stays in minor units; scaling to a display amount
// happens in the application layer.
func (r *EventRepositoryImpl) GrossIncomeMinorUnits(ctx context.Context, eventID uint) (int64, error) {
	var total int64

	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(tr.amount_minor), 0)
FROM transactions tr
JOIN ticket_reservations res ON res.id = tr.reservation_id
WHERE res.event_id = ? AND res.payment_status = 'COMPLETE'`, eventID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum event income: %w", err)
	}
	return total, nil
}

func (r *EventRepositoryImpl) DescriptionsFor(ctx context.Context, eventID uint) (map[string]string, error) {
	var records []*models.EventDescriptionModel

	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load event descriptions: %w", err)
	}

	descriptions := make(map[string]string, len(records))
	for _, record := range records {
		descriptions[record.Language] = record.Description
	}
	return descriptions, nil
}
