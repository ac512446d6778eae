// Package authorization implements the ownership check every event accessor
// routes through. It is the single authorization choke point of the core:
// any entry point resolving an event by name or ID for a principal must call
// CheckOwnership before returning or mutating data.
package authorization

import (
	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
	"github.com/tessera-live/tessera/internal/shared/errors"
)

// CheckOwnership verifies that a principal may act on an event/organization
// pair. It fails with an invalid-organization error when the expected
// organization does not match the event's owner, and with a not-authorized
// error when none of the principal's organizations owns the event. The
// mismatch check runs first, before membership is consulted.
func CheckOwnership(ev *event.Event, memberships []*organization.Organization, expectedOrganizationID uint) error {
	if ev == nil {
		return errors.NewNotFoundError("event not found")
	}
	if ev.OrganizationID() != expectedOrganizationID {
		return errors.NewInvalidOrganizationError(expectedOrganizationID, ev.OrganizationID())
	}
	for _, org := range memberships {
		if org.ID() == ev.OrganizationID() {
			return nil
		}
	}
	return errors.NewNotAuthorizedError(ev.OrganizationID())
}
