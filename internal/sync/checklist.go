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

type ChecklistSync struct {
	client persistence.Client
	store  *store.Store
	notes  *notify.Center
}

func NewChecklistSync(client persistence.Client, st *store.Store, notes *notify.Center) *ChecklistSync {
	return &ChecklistSync{client: client, store: st, notes: notes}
}

func (s *ChecklistSync) Load(ctx context.Context) error {
	if !s.store.Checklists.BeginLoad() {
		return nil
	}
	records, err := s.client.List(ctx, persistence.TableChecklists)
	if err != nil {
		if softMissing(err) {
			s.store.Checklists.SetAll(nil)
			return nil
		}
		s.store.Checklists.AbortLoad()
		logger.Error("failed to load checklists", "error", err)
		return err
	}
	checklists := make([]domain.Checklist, 0, len(records))
	for _, rec := range records {
		checklists = append(checklists, mapper.MapRecordToChecklist(rec))
	}
	s.store.Checklists.SetAll(checklists)
	return nil
}

// Save creates the checklist on first save and updates it afterwards.
func (s *ChecklistSync) Save(ctx context.Context, c domain.Checklist) error {
	if c.ID == "" {
		inserted, err := s.client.Insert(ctx, persistence.TableChecklists, mapper.MapChecklistToRecord(c))
		if err != nil {
			logger.Error("failed to create checklist", "error", err, "rental_id", c.RentalID)
			s.notes.Failure("Erro ao salvar o checklist.")
			return err
		}
		if inserted != nil {
			c = mapper.MapRecordToChecklist(inserted)
		} else {
			c.ID = uuid.NewString()
		}
		s.store.Checklists.Prepend(c)
		s.notes.Success("Checklist salvo com sucesso!")
		return nil
	}

	if err := s.client.Update(ctx, persistence.TableChecklists, mapper.MapChecklistToRecord(c), c.ID); err != nil {
		logger.Error("failed to update checklist", "error", err, "id", c.ID)
		s.notes.Failure("Erro ao salvar o checklist.")
		return err
	}
	s.store.Checklists.Replace(c)
	s.notes.Success("Checklist salvo com sucesso!")
	return nil
}

func (s *ChecklistSync) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, persistence.TableChecklists, id); err != nil {
		logger.Error("failed to delete checklist", "error", err, "id", id)
		s.notes.Failure("Erro ao excluir o checklist.")
		return err
	}
	s.store.Checklists.Remove(id)
	s.notes.Success("Checklist excluido com sucesso!")
	return nil
}
