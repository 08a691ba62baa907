package mapper

import (
	"strings"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/persistence"
)

func MapRecordToLocation(rec persistence.Record) domain.RentalLocation {
	return domain.RentalLocation{
		ID:   stringField(rec, "id"),
		Name: trimmedField(rec, "name"),
	}
}

func MapLocationToRecord(l domain.RentalLocation) persistence.Record {
	rec := persistence.Record{
		"name": strings.TrimSpace(l.Name),
	}
	if l.ID != "" {
		rec["id"] = l.ID
	}
	return rec
}
