// Package session keeps the current-user projection shown in the UI
// header. It is updated in place when the authenticated user's own
// record is edited, so the header reflects the edit without a reload.
package session

import (
	"strings"
	"sync"

	"jetfleet-backoffice/internal/domain"
)

// CurrentUser is the projection of the authenticated user.
type CurrentUser struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	AvatarURL string         `json:"avatarUrl"`
	Roles     domain.RoleSet `json:"roles"`
}

type Session struct {
	mu   sync.RWMutex
	user *CurrentUser
}

func New() *Session {
	return &Session{}
}

// Establish records the authenticated user after a successful login.
func (s *Session) Establish(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &CurrentUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Roles:     append(domain.RoleSet(nil), u.Roles...),
	}
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Current returns a copy of the projection and whether a user is
// authenticated.
func (s *Session) Current() (CurrentUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return CurrentUser{}, false
	}
	return *s.user, true
}

// ApplyUserUpdate propagates the changed fields of an edited user into
// the projection when the identity matches. Returns true when applied.
func (s *Session) ApplyUserUpdate(u domain.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || !strings.EqualFold(s.user.Email, u.Email) {
		return false
	}
	s.user.Name = u.Name
	s.user.AvatarURL = u.AvatarURL
	s.user.Roles = append(domain.RoleSet(nil), u.Roles...)
	return true
}
