package sync

import (
	"context"
	"errors"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/logger"
	"jetfleet-backoffice/internal/mapper"
	"jetfleet-backoffice/internal/notify"
	"jetfleet-backoffice/internal/persistence"
	"jetfleet-backoffice/internal/store"
)

// SettingsSync keeps the two singleton configuration records (company
// profile and price table) in sync. Both use the fixed well-known id.
type SettingsSync struct {
	client persistence.Client
	store  *store.Store
	notes  *notify.Center
}

func NewSettingsSync(client persistence.Client, st *store.Store, notes *notify.Center) *SettingsSync {
	return &SettingsSync{client: client, store: st, notes: notes}
}

func (s *SettingsSync) Load(ctx context.Context) error {
	if rec, err := s.client.GetOne(ctx, persistence.TableCompanyProfile, domain.SingletonID); err == nil {
		s.store.Profile.Set(mapper.MapRecordToCompanyProfile(rec))
	} else if !errors.Is(err, persistence.ErrNotFound) && !softMissing(err) {
		logger.Error("failed to load company profile", "error", err)
		return err
	}

	if rec, err := s.client.GetOne(ctx, persistence.TablePriceTable, domain.SingletonID); err == nil {
		s.store.Prices.Set(mapper.MapRecordToPriceTable(rec))
	} else if !errors.Is(err, persistence.ErrNotFound) && !softMissing(err) {
		logger.Error("failed to load price table", "error", err)
		return err
	}
	return nil
}

// SaveProfile upserts the company profile singleton.
func (s *SettingsSync) SaveProfile(ctx context.Context, p domain.CompanyProfile) error {
	rec := mapper.MapCompanyProfileToRecord(p)
	err := s.upsert(ctx, persistence.TableCompanyProfile, rec)
	if err != nil {
		logger.Error("failed to save company profile", "error", err)
		s.notes.Failure("Erro ao salvar os dados da empresa.")
		return err
	}
	s.store.Profile.Set(mapper.MapRecordToCompanyProfile(rec))
	s.notes.Success("Dados da empresa salvos com sucesso!")
	return nil
}

// SavePrices upserts the price table singleton.
func (s *SettingsSync) SavePrices(ctx context.Context, t domain.PriceTable) error {
	rec := mapper.MapPriceTableToRecord(t)
	err := s.upsert(ctx, persistence.TablePriceTable, rec)
	if err != nil {
		logger.Error("failed to save price table", "error", err)
		s.notes.Failure("Erro ao salvar a tabela de precos.")
		return err
	}
	s.store.Prices.Set(mapper.MapRecordToPriceTable(rec))
	s.notes.Success("Tabela de precos salva com sucesso!")
	return nil
}

func (s *SettingsSync) upsert(ctx context.Context, table string, rec persistence.Record) error {
	_, err := s.client.GetOne(ctx, table, domain.SingletonID)
	switch {
	case err == nil:
		return s.client.Update(ctx, table, rec, domain.SingletonID)
	case errors.Is(err, persistence.ErrNotFound), softMissing(err):
		_, insErr := s.client.Insert(ctx, table, rec)
		return insErr
	default:
		return err
	}
}
