package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tessera-live/tessera/internal/domain/category"
	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/domain/organization"
)

func newOrg(t *testing.T, id uint, name string) *organization.Organization {
	t.Helper()
	org, err := organization.ReconstructOrganization(id, name, "", name+"@example.org")
	require.NoError(t, err)
	return org
}

func newEvent(t *testing.T, id, orgID uint, shortName string, begin time.Time) *event.Event {
	t.Helper()
	ev, err := event.ReconstructEvent(id, shortName, shortName, orgID, "Zurich", "Europe/Zurich", "CHF", begin, begin.Add(3*time.Hour))
	require.NoError(t, err)
	return ev
}

func newCategory(t *testing.T, id, eventID uint, name string, ordinal int, bounded bool, maxTickets int) *category.TicketCategory {
	t.Helper()
	inception := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cat, err := category.ReconstructTicketCategory(id, eventID, name, maxTickets, bounded, ordinal, inception, inception.AddDate(0, 6, 0), 2500)
	require.NoError(t, err)
	return cat
}
