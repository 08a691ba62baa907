package store

import "jetfleet-backoffice/internal/domain"

// Store aggregates every entity collection. Costs keep a purchase-date
// descending canonical order and locations an alphabetical one, per the
// ordering guarantee of the sync operations.
type Store struct {
	Users      *Collection[domain.User]
	Rentals    *Collection[domain.Rental]
	Costs      *Collection[domain.Cost]
	Locations  *Collection[domain.RentalLocation]
	Fleet      *Collection[domain.FleetItem]
	Checklists *Collection[domain.Checklist]
	Profile    Singleton[domain.CompanyProfile]
	Prices     Singleton[domain.PriceTable]
}

func New() *Store {
	return &Store{
		Users: NewCollection(func(u domain.User) string { return u.ID }, nil),
		Rentals: NewCollection(func(r domain.Rental) string { return r.ID }, nil),
		Costs: NewCollection(
			func(c domain.Cost) string { return c.ID },
			func(a, b domain.Cost) bool { return a.PurchaseDate > b.PurchaseDate },
		),
		Locations: NewCollection(
			func(l domain.RentalLocation) string { return l.ID },
			func(a, b domain.RentalLocation) bool { return a.Name < b.Name },
		),
		Fleet:      NewCollection(func(f domain.FleetItem) string { return f.ID }, nil),
		Checklists: NewCollection(func(c domain.Checklist) string { return c.ID }, nil),
	}
}
