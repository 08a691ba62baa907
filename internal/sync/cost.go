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

type CostSync struct {
	client persistence.Client
	store  *store.Store
	notes  *notify.Center
}

func NewCostSync(client persistence.Client, st *store.Store, notes *notify.Center) *CostSync {
	return &CostSync{client: client, store: st, notes: notes}
}

func (s *CostSync) Load(ctx context.Context) error {
	if !s.store.Costs.BeginLoad() {
		return nil
	}
	records, err := s.client.List(ctx, persistence.TableCosts, persistence.WithOrder("purchase_date", true))
	if err != nil {
		if softMissing(err) {
			s.store.Costs.SetAll(nil)
			return nil
		}
		s.store.Costs.AbortLoad()
		logger.Error("failed to load costs", "error", err)
		return err
	}
	costs := make([]domain.Cost, 0, len(records))
	for _, rec := range records {
		costs = append(costs, mapper.MapRecordToCost(rec))
	}
	// The collection keeps purchase-date descending order on every
	// mutation, so screens never re-sort by date themselves.
	s.store.Costs.SetAll(costs)
	return nil
}

func (s *CostSync) Create(ctx context.Context, c domain.Cost) error {
	inserted, err := s.client.Insert(ctx, persistence.TableCosts, mapper.MapCostToRecord(c))
	if err != nil {
		logger.Error("failed to create cost", "error", err, "category", c.Category)
		s.notes.Failure("Erro ao salvar o custo.")
		return err
	}
	if inserted != nil {
		c = mapper.MapRecordToCost(inserted)
	} else if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.store.Costs.Prepend(c)
	s.notes.Success("Custo registrado com sucesso!")
	return nil
}

func (s *CostSync) Update(ctx context.Context, c domain.Cost) error {
	if err := s.client.Update(ctx, persistence.TableCosts, mapper.MapCostToRecord(c), c.ID); err != nil {
		logger.Error("failed to update cost", "error", err, "id", c.ID)
		s.notes.Failure("Erro ao atualizar o custo.")
		return err
	}
	s.store.Costs.Replace(c)
	s.notes.Success("Custo atualizado com sucesso!")
	return nil
}

func (s *CostSync) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, persistence.TableCosts, id); err != nil {
		logger.Error("failed to delete cost", "error", err, "id", id)
		s.notes.Failure("Erro ao excluir o custo.")
		return err
	}
	s.store.Costs.Remove(id)
	s.notes.Success("Custo excluido com sucesso!")
	return nil
}
