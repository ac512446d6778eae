package mappers

import (
	"fmt"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/infrastructure/persistence/models"
)

func EventToModel(ev *event.Event) *models.EventModel {
	return &models.EventModel{
		ID:             ev.ID(),
		ShortName:      ev.ShortName(),
		DisplayName:    ev.DisplayName(),
		OrganizationID: ev.OrganizationID(),
		Location:       ev.Location(),
		TimeZone:       ev.TimeZone(),
		Currency:       ev.Currency(),
		BeginAt:        ev.Begin(),
		EndAt:          ev.End(),
	}
}

func EventToDomain(model *models.EventModel) (*event.Event, error) {
	ev, err := event.ReconstructEvent(
		model.ID,
		model.ShortName,
		model.DisplayName,
		model.OrganizationID,
		model.Location,
		model.TimeZone,
		model.Currency,
		model.BeginAt,
		model.EndAt,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid event record %d: %w", model.ID, err)
	}
	return ev, nil
}

func EventsToDomain(records []*models.EventModel) ([]*event.Event, error) {
	events := make([]*event.Event, 0, len(records))
	for _, record := range records {
		ev, err := EventToDomain(record)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
