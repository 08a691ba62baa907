package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/logger"
	"jetfleet-backoffice/internal/persistence"
	"jetfleet-backoffice/internal/security"
	"jetfleet-backoffice/internal/session"
	"jetfleet-backoffice/internal/store"
	syncops "jetfleet-backoffice/internal/sync"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNoRoles            = errors.New("at least one role is required")
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	AddUser(ctx context.Context, u domain.User, password string) error
	RecoveryEmailExists(ctx context.Context, userID string) (bool, error)
	Logout()
}

type authService struct {
	client  persistence.Client
	store   *store.Store
	session *session.Session
	users   *syncops.UserSync
	tokens  security.TokenManager
	reload  func(ctx context.Context) error
}

// NewAuthService wires the login/signup flows. reload is invoked after a
// successful authentication to perform the full entity-store reload.
func NewAuthService(
	client persistence.Client,
	st *store.Store,
	sess *session.Session,
	users *syncops.UserSync,
	tokens security.TokenManager,
	reload func(ctx context.Context) error,
) AuthService {
	return &authService{
		client:  client,
		store:   st,
		session: sess,
		users:   users,
		tokens:  tokens,
		reload:  reload,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	// The user collection is the authentication-gating subset; make sure
	// it is loaded before checking credentials.
	if s.store.Users.State() != store.Loaded {
		if err := s.users.Load(ctx); err != nil {
			return "", "", err
		}
	}

	user, ok := s.findByEmail(email)
	if !ok {
		return "", "", ErrInvalidCredentials
	}
	if !user.Active {
		return "", "", ErrInactiveUser
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", "", ErrInvalidCredentials
	}
	// A user who authenticates into the protected area must carry at
	// least one role tag.
	if user.Roles.IsEmpty() {
		return "", "", ErrInvalidCredentials
	}

	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = string(r)
	}
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, roles)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}

	s.session.Establish(user)
	logger.Info("user authenticated", "email", user.Email)

	if s.reload != nil {
		if err := s.reload(ctx); err != nil {
			logger.Warn("post-login reload incomplete", "error", err)
		}
	}
	return access, refresh, nil
}

// Signup is the public self-signup path: it always assigns the default
// role and active status. The admin-added-user path (AddUser) converges
// on the same persisted shape but takes explicit role/status input.
func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	if s.store.Users.State() != store.Loaded {
		if err := s.users.Load(ctx); err != nil {
			return nil, err
		}
	}
	if _, taken := s.findByEmail(email); taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		Email:        strings.TrimSpace(email),
		Name:         name,
		Roles:        domain.RoleSet{domain.RoleFuncionario},
		Active:       true,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	created, _ := s.findByEmail(user.Email)
	return &created, nil
}

// AddUser is the admin path: roles come from the form and an empty
// selection is a validation error, never defaulted.
func (s *authService) AddUser(ctx context.Context, u domain.User, password string) error {
	if u.Roles.IsEmpty() {
		return ErrNoRoles
	}
	if _, taken := s.findByEmail(u.Email); taken {
		return ErrEmailTaken
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
	}
	return s.users.Create(ctx, u)
}

// RecoveryEmailExists checks whether the stored recovery record exists,
// via a direct single-record lookup.
func (s *authService) RecoveryEmailExists(ctx context.Context, userID string) (bool, error) {
	_, err := s.client.GetOne(ctx, persistence.TableUsers, userID)
	if errors.Is(err, persistence.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *authService) Logout() {
	s.session.Clear()
}

// findByEmail matches active login-capable users case-insensitively.
// Email is unique among them, so the first match wins.
func (s *authService) findByEmail(email string) (domain.User, bool) {
	email = strings.TrimSpace(email)
	for _, u := range s.store.Users.Snapshot() {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return domain.User{}, false
}
