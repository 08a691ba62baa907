package persistence

import (
	"context"
	"errors"
)

// Table names at the data-store boundary.
const (
	TableUsers          = "app_users"
	TableRentals        = "rentals"
	TableCosts          = "costs"
	TableLocations      = "rental_locations"
	TableFleet          = "fleet"
	TableChecklists     = "checklists"
	TableCompanyProfile = "company_profile"
	TablePriceTable     = "price_table"
)

var (
	// ErrNotFound indicates a getOne miss for an existing table.
	ErrNotFound = errors.New("record not found")
	// ErrResourceMissing indicates the table itself is not provisioned.
	// Callers treat this as an empty collection, not a hard failure.
	ErrResourceMissing = errors.New("resource not provisioned")
)

// Record is a loosely-typed persisted record. Field naming at this
// boundary is flat lower_case_with_underscores; values may be missing,
// null, or the wrong primitive type. Only the mapper package may read
// raw record field names.
type Record map[string]any

// ListOptions carries optional query modifiers for List.
type ListOptions struct {
	OrderColumn     string
	OrderDescending bool
}

// ListOption modifies a List call.
type ListOption func(*ListOptions)

// WithOrder asks the data store to return records ordered by a column.
func WithOrder(column string, descending bool) ListOption {
	return func(o *ListOptions) {
		o.OrderColumn = column
		o.OrderDescending = descending
	}
}

// Client is the persistence collaborator contract, used uniformly per
// entity table.
type Client interface {
	List(ctx context.Context, table string, opts ...ListOption) ([]Record, error)
	Insert(ctx context.Context, table string, rec Record) (Record, error)
	Update(ctx context.Context, table string, rec Record, id string) error
	Delete(ctx context.Context, table string, id string) error
	GetOne(ctx context.Context, table string, id string) (Record, error)
}
