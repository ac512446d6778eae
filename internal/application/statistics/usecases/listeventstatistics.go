package usecases

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

// ListEventStatisticsQuery selects the events of every organization the
// principal belongs to. A nil Filter keeps all events and makes the result
// eligible for the read-through cache.
type ListEventStatisticsQuery struct {
	Principal string
	Filter    func(*event.Event) bool
}

type ListEventStatisticsUseCase struct {
	orgDirectory organization.Directory
	eventRepo    event.Repository
	cache        EventStatisticsCache
	logger       logger.Interface
}

func NewListEventStatisticsUseCase(
	orgDirectory organization.Directory,
	eventRepo event.Repository,
	cache EventStatisticsCache,
	logger logger.Interface,
) *ListEventStatisticsUseCase {
	return &ListEventStatisticsUseCase{
		orgDirectory: orgDirectory,
		eventRepo:    eventRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Execute loads all events across the principal's organizations, applies the
// filter, joins each surviving event with its statistic snapshot and returns
// the result in the natural statistic order. The per-organization fan-out
// runs concurrently; the final order is deterministic regardless.
func (uc *ListEventStatisticsUseCase) Execute(ctx context.Context, query ListEventStatisticsQuery) ([]event.Statistic, error) {
	cacheable := query.Filter == nil && uc.cache != nil

	if cacheable {
		if cached, ok, err := uc.cache.Get(ctx, query.Principal); err != nil {
			uc.logger.Warnw("event statistics cache read failed", "error", err, "principal", query.Principal)
		} else if ok {
			return cached, nil
		}
	}

	events, err := uc.loadAllEvents(ctx, query.Principal)
	if err != nil {
		return nil, err
	}

	filtered := events
	if query.Filter != nil {
		filtered = make([]*event.Event, 0, len(events))
		for _, ev := range events {
			if query.Filter(ev) {
				filtered = append(filtered, ev)
			}
		}
	}

	// The statistics join is only meaningful against a non-empty key set.
	if len(filtered) == 0 {
		return []event.Statistic{}, nil
	}

	ids := make([]uint, 0, len(filtered))
	for _, ev := range filtered {
		ids = append(ids, ev.ID())
	}

	views, err := uc.eventRepo.StatisticsForIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	viewByID := make(map[uint]*event.StatisticView, len(views))
	for i := range views {
		viewByID[views[i].EventID] = &views[i]
	}

	// Every filtered event appears in the result; an event the store returned
	// no row for gets a zero-valued snapshot rather than vanishing.
	stats := make([]event.Statistic, 0, len(filtered))
	for _, ev := range filtered {
		view, ok := viewByID[ev.ID()]
		if !ok {
			view = &event.StatisticView{EventID: ev.ID()}
		}
		stats = append(stats, event.Statistic{Event: ev, View: view})
	}
	event.SortStatistics(stats)

	if cacheable {
		if err := uc.cache.Set(ctx, query.Principal, stats); err != nil {
			uc.logger.Warnw("event statistics cache write failed", "error", err, "principal", query.Principal)
		}
	}

	return stats, nil
}

// loadAllEvents fans out over the principal's organizations. Events across
// organizations are independent and read-only here, so the reads run
// concurrently.
func (uc *ListEventStatisticsUseCase) loadAllEvents(ctx context.Context, principal string) ([]*event.Event, error) {
	orgs, err := uc.orgDirectory.OrganizationsOf(ctx, principal)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	perOrg := make(map[uint][]*event.Event, len(orgs))

	g, gctx := errgroup.WithContext(ctx)
	for _, org := range orgs {
		orgID := org.ID()
		g.Go(func() error {
			events, err := uc.eventRepo.FindByOrganizationID(gctx, orgID)
			if err != nil {
				return err
			}
			mu.Lock()
			perOrg[orgID] = events
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Flatten in directory order so the pre-sort sequence is reproducible.
	var all []*event.Event
	for _, org := range orgs {
		all = append(all, perOrg[org.ID()]...)
	}
	return all, nil
}
