package sync

import (
	"context"

	"github.com/google/uuid"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/logger"
	"jetfleet-backoffice/internal/mapper"
	"jetfleet-backoffice/internal/notify"
	"jetfleet-backoffice/internal/persistence"
	"jetfleet-backoffice/internal/store"
)

type LocationSync struct {
	client persistence.Client
	store  *store.Store
	notes  *notify.Center
}

func NewLocationSync(client persistence.Client, st *store.Store, notes *notify.Center) *LocationSync {
	return &LocationSync{client: client, store: st, notes: notes}
}

// Load fetches the locations. The table is optional: a deployment that
// never provisioned it gets an empty collection, not an error banner.
func (s *LocationSync) Load(ctx context.Context) error {
	if !s.store.Locations.BeginLoad() {
		return nil
	}
	records, err := s.client.List(ctx, persistence.TableLocations, persistence.WithOrder("name", false))
	if err != nil {
		if softMissing(err) {
			s.store.Locations.SetAll(nil)
			return nil
		}
		s.store.Locations.AbortLoad()
		logger.Error("failed to load rental locations", "error", err)
		return err
	}
	locations := make([]domain.RentalLocation, 0, len(records))
	for _, rec := range records {
		locations = append(locations, mapper.MapRecordToLocation(rec))
	}
	// Alphabetical canonical order is restored on every mutation.
	s.store.Locations.SetAll(locations)
	return nil
}

func (s *LocationSync) Create(ctx context.Context, l domain.RentalLocation) error {
	inserted, err := s.client.Insert(ctx, persistence.TableLocations, mapper.MapLocationToRecord(l))
	if err != nil {
		logger.Error("failed to create rental location", "error", err, "name", l.Name)
		s.notes.Failure("Erro ao salvar o local.")
		return err
	}
	if inserted != nil {
		l = mapper.MapRecordToLocation(inserted)
	} else if l.ID == "" {
		l.ID = uuid.NewString()
	}
	s.store.Locations.Prepend(l)
	s.notes.Success("Local cadastrado com sucesso!")
	return nil
}

func (s *LocationSync) Update(ctx context.Context, l domain.RentalLocation) error {
	if err := s.client.Update(ctx, persistence.TableLocations, mapper.MapLocationToRecord(l), l.ID); err != nil {
		logger.Error("failed to update rental location", "error", err, "id", l.ID)
		s.notes.Failure("Erro ao atualizar o local.")
		return err
	}
	s.store.Locations.Replace(l)
	s.notes.Success("Local atualizado com sucesso!")
	return nil
}

func (s *LocationSync) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, persistence.TableLocations, id); err != nil {
		logger.Error("failed to delete rental location", "error", err, "id", id)
		s.notes.Failure("Erro ao excluir o local.")
		return err
	}
	s.store.Locations.Remove(id)
	s.notes.Success("Local excluido com sucesso!")
	return nil
}
