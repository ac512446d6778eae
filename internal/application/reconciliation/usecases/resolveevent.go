package usecases

import (
	"context"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/shared/authorization"
	"github.com/tessera-live/tessera/internal/shared/errors"
)

// resolveOwnedEvent loads an event by short name and verifies the principal
// belongs to the owning organization. Every mutating reconciliation entry
// point goes through this guard.
func resolveOwnedEvent(
	ctx context.Context,
	eventRepo event.Repository,
	orgDirectory organization.Directory,
	shortName, principal string,
) (*event.Event, error) {
	ev, err := eventRepo.FindByShortName(ctx, shortName)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, errors.NewNotFoundError("event not found", shortName)
	}

	memberships, err := orgDirectory.OrganizationsOf(ctx, principal)
	if err != nil {
		return nil, err
	}
	if err := authorization.CheckOwnership(ev, memberships, ev.OrganizationID()); err != nil {
		return nil, err
	}
	return ev, nil
}
