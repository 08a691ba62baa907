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

type FleetSync struct {
	client persistence.Client
	store  *store.Store
	notes  *notify.Center
}

func NewFleetSync(client persistence.Client, st *store.Store, notes *notify.Center) *FleetSync {
	return &FleetSync{client: client, store: st, notes: notes}
}

func (s *FleetSync) Load(ctx context.Context) error {
	if !s.store.Fleet.BeginLoad() {
		return nil
	}
	records, err := s.client.List(ctx, persistence.TableFleet, persistence.WithOrder("name", false))
	if err != nil {
		if softMissing(err) {
			s.store.Fleet.SetAll(nil)
			return nil
		}
		s.store.Fleet.AbortLoad()
		logger.Error("failed to load fleet", "error", err)
		return err
	}
	fleet := make([]domain.FleetItem, 0, len(records))
	for _, rec := range records {
		fleet = append(fleet, mapper.MapRecordToFleetItem(rec))
	}
	s.store.Fleet.SetAll(fleet)
	return nil
}

func (s *FleetSync) Create(ctx context.Context, f domain.FleetItem) error {
	inserted, err := s.client.Insert(ctx, persistence.TableFleet, mapper.MapFleetItemToRecord(f))
	if err != nil {
		logger.Error("failed to create fleet item", "error", err, "name", f.Name)
		s.notes.Failure("Erro ao salvar o veiculo.")
		return err
	}
	if inserted != nil {
		f = mapper.MapRecordToFleetItem(inserted)
	} else if f.ID == "" {
		f.ID = uuid.NewString()
	}
	s.store.Fleet.Prepend(f)
	s.notes.Success("Veiculo cadastrado com sucesso!")
	return nil
}

func (s *FleetSync) Update(ctx context.Context, f domain.FleetItem) error {
	if err := s.client.Update(ctx, persistence.TableFleet, mapper.MapFleetItemToRecord(f), f.ID); err != nil {
		logger.Error("failed to update fleet item", "error", err, "id", f.ID)
		s.notes.Failure("Erro ao atualizar o veiculo.")
		return err
	}
	s.store.Fleet.Replace(f)
	s.notes.Success("Veiculo atualizado com sucesso!")
	return nil
}

// Deactivate is the administrative soft delete: the item keeps its
// operational status but stops appearing on active listings.
func (s *FleetSync) Deactivate(ctx context.Context, id string) error {
	item, ok := s.store.Fleet.Get(id)
	if !ok {
		return nil
	}
	item.Active = false
	return s.Update(ctx, item)
}

func (s *FleetSync) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, persistence.TableFleet, id); err != nil {
		logger.Error("failed to delete fleet item", "error", err, "id", id)
		s.notes.Failure("Erro ao excluir o veiculo.")
		return err
	}
	s.store.Fleet.Remove(id)
	s.notes.Success("Veiculo excluido com sucesso!")
	return nil
}
