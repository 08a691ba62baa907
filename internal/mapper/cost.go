package mapper

import (
	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/persistence"
)

func MapRecordToCost(rec persistence.Record) domain.Cost {
	return domain.Cost{
		ID:           stringField(rec, "id"),
		Category:     stringField(rec, "category"),
		Value:        numberField(rec, "value"),
		PaidValue:    numberField(rec, "paid_value"),
		Responsible:  stringField(rec, "responsible"),
		PurchaseDate: stringField(rec, "purchase_date"),
		IsPaid:       boolField(rec, "is_paid"),
		Observations: stringField(rec, "observations"),
	}
}

func MapCostToRecord(c domain.Cost) persistence.Record {
	rec := persistence.Record{
		"category":      c.Category,
		"value":         c.Value,
		"paid_value":    c.PaidValue,
		"responsible":   c.Responsible,
		"purchase_date": nullableDate(c.PurchaseDate),
		"is_paid":       c.IsPaid,
		"observations":  c.Observations,
	}
	if c.ID != "" {
		rec["id"] = c.ID
	}
	return rec
}
