package mapper

import (
	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/persistence"
)

func MapRecordToRental(rec persistence.Record) domain.Rental {
	r := domain.Rental{
		ID:             stringField(rec, "id"),
		ClientName:     stringField(rec, "client_name"),
		ClientDocument: stringField(rec, "client_document"),
		ClientPhone:    stringField(rec, "client_phone"),
		ClientInitials: stringField(rec, "client_initials"),
		Date:           stringField(rec, "rental_date"),
		Type:           domain.RentalType(stringField(rec, "rental_type")),
		StartTime:      stringField(rec, "start_time"),
		EndTime:        stringField(rec, "end_time"),
		Status:         domain.RentalStatus(stringField(rec, "status")),
		LocationName:   trimmedField(rec, "location"),
		Observations:   stringField(rec, "observations"),
		PaymentMethod:  domain.PaymentMethod(stringField(rec, "payment_method")),
		Value:          numberField(rec, "value"),
	}
	if r.ClientInitials == "" {
		r.ClientInitials = initialsFromName(r.ClientName)
	}
	return r
}

func MapRentalToRecord(r domain.Rental) persistence.Record {
	rec := persistence.Record{
		"client_name":     r.ClientName,
		"client_document": r.ClientDocument,
		"client_phone":    r.ClientPhone,
		"client_initials": r.ClientInitials,
		"rental_date":     nullableDate(r.Date),
		"rental_type":     string(r.Type),
		"start_time":      r.StartTime,
		"end_time":        r.EndTime,
		"status":          string(r.Status),
		"location":        r.LocationName,
		"observations":    r.Observations,
		"payment_method":  string(r.PaymentMethod),
		"value":           r.Value,
	}
	if r.ID != "" {
		rec["id"] = r.ID
	}
	return rec
}
