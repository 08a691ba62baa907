package sync

import (
	"context"

	"github.com/google/uuid"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/logger"
	"jetfleet-backoffice/internal/mapper"
	"jetfleet-backoffice/internal/notify"
	"jetfleet-backoffice/internal/persistence"
	"jetfleet-backoffice/internal/session"
	"jetfleet-backoffice/internal/store"
)

type UserSync struct {
	client  persistence.Client
	store   *store.Store
	notes   *notify.Center
	session *session.Session
}

func NewUserSync(client persistence.Client, st *store.Store, notes *notify.Center, sess *session.Session) *UserSync {
	return &UserSync{client: client, store: st, notes: notes, session: sess}
}

// Load fetches the full user collection. This is the
// authentication-gating subset: it is loaded on startup, before login.
func (s *UserSync) Load(ctx context.Context) error {
	if !s.store.Users.BeginLoad() {
		return nil
	}
	records, err := s.client.List(ctx, persistence.TableUsers)
	if err != nil {
		if softMissing(err) {
			s.store.Users.SetAll(nil)
			return nil
		}
		s.store.Users.AbortLoad()
		logger.Error("failed to load users", "error", err)
		return err
	}
	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, mapper.MapRecordToUser(rec))
	}
	s.store.Users.SetAll(users)
	return nil
}

func (s *UserSync) Create(ctx context.Context, u domain.User) error {
	inserted, err := s.client.Insert(ctx, persistence.TableUsers, mapper.MapUserToRecord(u))
	if err != nil {
		logger.Error("failed to create user", "error", err, "email", u.Email)
		s.notes.Failure("Erro ao salvar o usuario.")
		return err
	}
	if inserted != nil {
		u = mapper.MapRecordToUser(inserted)
	} else if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.store.Users.Prepend(u)
	s.notes.Success("Usuario cadastrado com sucesso!")
	return nil
}

func (s *UserSync) Update(ctx context.Context, u domain.User) error {
	// The edit form does not expose the credential, so the incoming user
	// carries an empty hash. Keep the stored one or the edited user could
	// never log in again.
	if u.PasswordHash == "" {
		if current, ok := s.store.Users.Get(u.ID); ok {
			u.PasswordHash = current.PasswordHash
		}
	}
	if err := s.client.Update(ctx, persistence.TableUsers, mapper.MapUserToRecord(u), u.ID); err != nil {
		logger.Error("failed to update user", "error", err, "id", u.ID)
		s.notes.Failure("Erro ao atualizar o usuario.")
		return err
	}
	s.store.Users.Replace(u)
	// If the edited user is the authenticated one, the header projection
	// must reflect the edit without a full reload.
	s.session.ApplyUserUpdate(u)
	s.notes.Success("Usuario atualizado com sucesso!")
	return nil
}

func (s *UserSync) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, persistence.TableUsers, id); err != nil {
		logger.Error("failed to delete user", "error", err, "id", id)
		s.notes.Failure("Erro ao excluir o usuario.")
		return err
	}
	s.store.Users.Remove(id)
	s.notes.Success("Usuario excluido com sucesso!")
	return nil
}
