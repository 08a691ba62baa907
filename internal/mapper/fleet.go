package mapper

import (
	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/persistence"
)

func MapRecordToFleetItem(rec persistence.Record) domain.FleetItem {
	return domain.FleetItem{
		ID:       stringField(rec, "id"),
		Name:     stringField(rec, "name"),
		Color:    stringField(rec, "color"),
		Plate:    stringField(rec, "plate"),
		Status:   domain.FleetStatus(stringField(rec, "status")),
		Category: domain.FleetCategory(stringField(rec, "category")),
		// Items created before the soft-delete column existed count as active.
		Active: boolFieldDefaultTrue(rec, "is_active"),
	}
}

func MapFleetItemToRecord(f domain.FleetItem) persistence.Record {
	rec := persistence.Record{
		"name":      f.Name,
		"color":     f.Color,
		"plate":     f.Plate,
		"status":    string(f.Status),
		"category":  string(f.Category),
		"is_active": f.Active,
	}
	if f.ID != "" {
		rec["id"] = f.ID
	}
	return rec
}
