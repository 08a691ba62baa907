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

type RentalSync struct {
	client persistence.Client
	store  *store.Store
	notes  *notify.Center
}

func NewRentalSync(client persistence.Client, st *store.Store, notes *notify.Center) *RentalSync {
	return &RentalSync{client: client, store: st, notes: notes}
}

// Load performs the single full-collection fetch.
func (s *RentalSync) Load(ctx context.Context) error {
	if !s.store.Rentals.BeginLoad() {
		return nil
	}
	records, err := s.client.List(ctx, persistence.TableRentals, persistence.WithOrder("rental_date", true))
	if err != nil {
		if softMissing(err) {
			s.store.Rentals.SetAll(nil)
			return nil
		}
		s.store.Rentals.AbortLoad()
		logger.Error("failed to load rentals", "error", err)
		return err
	}
	rentals := make([]domain.Rental, 0, len(records))
	for _, rec := range records {
		rentals = append(rentals, mapper.MapRecordToRental(rec))
	}
	s.store.Rentals.SetAll(rentals)
	return nil
}

func (s *RentalSync) Create(ctx context.Context, r domain.Rental) error {
	inserted, err := s.client.Insert(ctx, persistence.TableRentals, mapper.MapRentalToRecord(r))
	if err != nil {
		logger.Error("failed to create rental", "error", err, "client", r.ClientName)
		s.notes.Failure("Erro ao salvar a locacao.")
		return err
	}
	if inserted != nil {
		r = mapper.MapRecordToRental(inserted)
	} else if r.ID == "" {
		// The collaborator did not echo the row; fall back to a
		// client-generated id so the entity stays addressable.
		r.ID = uuid.NewString()
	}
	s.store.Rentals.Prepend(r)
	s.notes.Success("Locacao registrada com sucesso!")
	return nil
}

func (s *RentalSync) Update(ctx context.Context, r domain.Rental) error {
	if err := s.client.Update(ctx, persistence.TableRentals, mapper.MapRentalToRecord(r), r.ID); err != nil {
		logger.Error("failed to update rental", "error", err, "id", r.ID)
		s.notes.Failure("Erro ao atualizar a locacao.")
		return err
	}
	s.store.Rentals.Replace(r)
	s.notes.Success("Locacao atualizada com sucesso!")
	return nil
}

func (s *RentalSync) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, persistence.TableRentals, id); err != nil {
		logger.Error("failed to delete rental", "error", err, "id", id)
		s.notes.Failure("Erro ao excluir a locacao.")
		return err
	}
	s.store.Rentals.Remove(id)
	s.notes.Success("Locacao excluida com sucesso!")
	return nil
}
