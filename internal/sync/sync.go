// Package sync implements the write-through create/update/delete
// operations that keep the in-memory entity store consistent with the
// persistence collaborator. The discipline is confirm-then-apply: the
// store is only mutated after the collaborator confirms success, so a
// failed write leaves the UI state untouched and no rollback machinery
// exists.
package sync

import (
	"context"
	"errors"

	"jetfleet-backoffice/internal/persistence"
)

// Services bundles every per-entity sync family, wired once at the
// application root.
type Services struct {
	Users      *UserSync
	Rentals    *RentalSync
	Costs      *CostSync
	Locations  *LocationSync
	Fleet      *FleetSync
	Checklists *ChecklistSync
	Settings   *SettingsSync
}

// LoadAll performs the full reload that follows a successful
// authentication: one full-collection fetch per entity type.
func (s *Services) LoadAll(ctx context.Context) error {
	loaders := []func(context.Context) error{
		s.Users.Load,
		s.Rentals.Load,
		s.Costs.Load,
		s.Locations.Load,
		s.Fleet.Load,
		s.Checklists.Load,
		s.Settings.Load,
	}
	for _, load := range loaders {
		if err := load(ctx); err != nil {
			return err
		}
	}
	return nil
}

// softMissing reports whether a list error means the table simply is
// not provisioned yet — treated as an empty collection, never surfaced
// to the user.
func softMissing(err error) bool {
	return errors.Is(err, persistence.ErrResourceMissing)
}
