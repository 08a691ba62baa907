package mapper

import (
	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/persistence"
)

func MapRecordToCompanyProfile(rec persistence.Record) domain.CompanyProfile {
	p := domain.CompanyProfile{
		ID:       stringField(rec, "id"),
		Name:     stringField(rec, "name"),
		Document: stringField(rec, "document"),
		Phone:    stringField(rec, "phone"),
		Email:    trimmedField(rec, "email"),
		Address:  stringField(rec, "address"),
		LogoURL:  stringField(rec, "logo_url"),
	}
	if p.ID == "" {
		p.ID = domain.SingletonID
	}
	return p
}

func MapCompanyProfileToRecord(p domain.CompanyProfile) persistence.Record {
	id := p.ID
	if id == "" {
		id = domain.SingletonID
	}
	return persistence.Record{
		"id":       id,
		"name":     p.Name,
		"document": p.Document,
		"phone":    p.Phone,
		"email":    p.Email,
		"address":  p.Address,
		"logo_url": p.LogoURL,
	}
}

func MapRecordToPriceTable(rec persistence.Record) domain.PriceTable {
	t := domain.PriceTable{
		ID:       stringField(rec, "id"),
		HalfHour: numberField(rec, "price_30min"),
		OneHour:  numberField(rec, "price_1h"),
		TwoHours: numberField(rec, "price_2h"),
		Daily:    numberField(rec, "price_daily"),
	}
	if t.ID == "" {
		t.ID = domain.SingletonID
	}
	return t
}

func MapPriceTableToRecord(t domain.PriceTable) persistence.Record {
	id := t.ID
	if id == "" {
		id = domain.SingletonID
	}
	return persistence.Record{
		"id":          id,
		"price_30min": t.HalfHour,
		"price_1h":    t.OneHour,
		"price_2h":    t.TwoHours,
		"price_daily": t.Daily,
	}
}
