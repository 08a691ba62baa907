package mapper

import (
	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/persistence"
)

func MapRecordToChecklist(rec persistence.Record) domain.Checklist {
	c := domain.Checklist{
		ID:             stringField(rec, "id"),
		RentalID:       stringField(rec, "rental_id"),
		CheckInStatus:  domain.CheckInStatus(stringField(rec, "check_in_status")),
		CheckOutStatus: domain.CheckOutStatus(stringField(rec, "check_out_status")),
		CheckInItems:   boolItems(rec, "check_in_items"),
		CheckOutItems:  boolItems(rec, "check_out_items"),
		Observations:   stringField(rec, "observations"),
	}
	if c.CheckInStatus == "" {
		c.CheckInStatus = domain.CheckInStatusPending
	}
	if c.CheckOutStatus == "" {
		c.CheckOutStatus = domain.CheckOutStatusNotStarted
	}
	return c
}

func MapChecklistToRecord(c domain.Checklist) persistence.Record {
	rec := persistence.Record{
		"rental_id":        c.RentalID,
		"check_in_status":  string(c.CheckInStatus),
		"check_out_status": string(c.CheckOutStatus),
		"check_in_items":   c.CheckInItems,
		"check_out_items":  c.CheckOutItems,
		"observations":     c.Observations,
	}
	if c.ID != "" {
		rec["id"] = c.ID
	}
	return rec
}
