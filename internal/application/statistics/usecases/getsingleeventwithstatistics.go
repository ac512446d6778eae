package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/application/statistics/dto"
	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/domain/ticket"
	"github.com/tessera-live/tessera/internal/shared/authorization"
	"github.com/tessera-live/tessera/internal/shared/errors"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

type GetSingleEventQuery struct {
	EventShortName string
	Principal      string
}

// GetSingleEventWithStatisticsUseCase resolves an event by short name scoped
// to the principal and composes its full statistics view.
//
// Deprecated: the admin UI is moving to the per-concern accessors; this
// composite stays until that migration completes.
type GetSingleEventWithStatisticsUseCase struct {
	orgDirectory   organization.Directory
	eventRepo      event.Repository
	ticketRepo     ticket.Repository
	loadCategories LoadCategoriesWithStatisticsExecutor
	logger         logger.Interface
}

func NewGetSingleEventWithStatisticsUseCase(
	orgDirectory organization.Directory,
	eventRepo event.Repository,
	ticketRepo ticket.Repository,
	loadCategories LoadCategoriesWithStatisticsExecutor,
	logger logger.Interface,
) *GetSingleEventWithStatisticsUseCase {
	return &GetSingleEventWithStatisticsUseCase{
		orgDirectory:   orgDirectory,
		eventRepo:      eventRepo,
		ticketRepo:     ticketRepo,
		loadCategories: loadCategories,
		logger:         logger,
	}
}

func (uc *GetSingleEventWithStatisticsUseCase) Execute(ctx context.Context, query GetSingleEventQuery) (*dto.EventWithStatistics, error) {
	ev, err := uc.resolveEvent(ctx, query.EventShortName, query.Principal)
	if err != nil {
		return nil, err
	}

	descriptions, err := uc.eventRepo.DescriptionsFor(ctx, ev.ID())
	if err != nil {
		return nil, err
	}

	categories, err := uc.loadCategories.Execute(ctx, ev)
	if err != nil {
		return nil, err
	}

	releasedUnbound, err := uc.ticketRepo.CountReleasedUnbound(ctx, ev.ID())
	if err != nil {
		return nil, err
	}

	return &dto.EventWithStatistics{
		Event:                ev,
		Descriptions:         descriptions,
		Categories:           categories,
		ReleasedUnboundCount: releasedUnbound,
	}, nil
}

// resolveEvent loads the event by short name and routes through the
// ownership guard before anything is returned.
func (uc *GetSingleEventWithStatisticsUseCase) resolveEvent(ctx context.Context, shortName, principal string) (*event.Event, error) {
	ev, err := uc.eventRepo.FindByShortName(ctx, shortName)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, errors.NewNotFoundError("event not found", shortName)
	}

	memberships, err := uc.orgDirectory.OrganizationsOf(ctx, principal)
	if err != nil {
		return nil, err
	}
	if err := authorization.CheckOwnership(ev, memberships, ev.OrganizationID()); err != nil {
		return nil, err
	}
	return ev, nil
}
