package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/notify"
	"jetfleet-backoffice/internal/persistence"
	"jetfleet-backoffice/internal/security"
	"jetfleet-backoffice/internal/session"
	"jetfleet-backoffice/internal/store"
	syncops "jetfleet-backoffice/internal/sync"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) List(ctx context.Context, table string, opts ...persistence.ListOption) ([]persistence.Record, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistence.Record), args.Error(1)
}

func (m *MockClient) Insert(ctx context.Context, table string, rec persistence.Record) (persistence.Record, error) {
	args := m.Called(ctx, table, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(persistence.Record), args.Error(1)
}

func (m *MockClient) Update(ctx context.Context, table string, rec persistence.Record, id string) error {
	args := m.Called(ctx, table, rec, id)
	return args.Error(0)
}

func (m *MockClient) Delete(ctx context.Context, table string, id string) error {
	args := m.Called(ctx, table, id)
	return args.Error(0)
}

func (m *MockClient) GetOne(ctx context.Context, table string, id string) (persistence.Record, error) {
	args := m.Called(ctx, table, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(persistence.Record), args.Error(1)
}

type authFixture struct {
	client  *MockClient
	store   *store.Store
	session *session.Session
	svc     AuthService
}

func newAuthFixture(t *testing.T, users []domain.User) *authFixture {
	t.Helper()
	client := new(MockClient)
	st := store.New()
	sess := session.New()
	notes := notify.NewCenter(time.Minute)
	userSync := syncops.NewUserSync(client, st, notes, sess)
	tokens := security.NewTokenManager("test-secret", time.Minute, time.Hour)

	st.Users.SetAll(users)

	svc := NewAuthService(client, st, sess, userSync, tokens, nil)
	return &authFixture{client: client, store: st, session: sess, svc: svc}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	password := "senha123"

	t.Run("success establishes session and issues tokens", func(t *testing.T) {
		f := newAuthFixture(t, []domain.User{{
			ID:           "u-1",
			Email:        "ana@jetfleet.com",
			Name:         "Ana",
			Roles:        domain.RoleSet{domain.RoleGerente},
			Active:       true,
			PasswordHash: hashOf(t, password),
		}})

		access, refresh, err := f.svc.Login(ctx, "ANA@jetfleet.com", password)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		cur, ok := f.session.Current()
		require.True(t, ok)
		assert.Equal(t, "u-1", cur.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t, []domain.User{{
			Email:        "ana@jetfleet.com",
			Roles:        domain.RoleSet{domain.RoleGerente},
			Active:       true,
			PasswordHash: hashOf(t, password),
		}})

		_, _, err := f.svc.Login(ctx, "ana@jetfleet.com", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, ok := f.session.Current()
		assert.False(t, ok)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		_, _, err := f.svc.Login(ctx, "ninguem@jetfleet.com", password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		f := newAuthFixture(t, []domain.User{{
			Email:        "ex@jetfleet.com",
			Roles:        domain.RoleSet{domain.RoleFuncionario},
			Active:       false,
			PasswordHash: hashOf(t, password),
		}})

		_, _, err := f.svc.Login(ctx, "ex@jetfleet.com", password)
		assert.ErrorIs(t, err, ErrInactiveUser)
	})

	t.Run("user without roles cannot enter", func(t *testing.T) {
		f := newAuthFixture(t, []domain.User{{
			Email:        "sem@jetfleet.com",
			Active:       true,
			PasswordHash: hashOf(t, password),
		}})

		_, _, err := f.svc.Login(ctx, "sem@jetfleet.com", password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns default role and active status", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.client.On("Insert", ctx, persistence.TableUsers, mock.Anything).Return(nil, nil)

		user, err := f.svc.Signup(ctx, "Novo Usuario", "novo@jetfleet.com", "senha123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.True(t, user.Active)
		assert.True(t, user.Roles.Has(domain.RoleFuncionario))
		assert.Len(t, user.Roles, 1)

		// The password is stored hashed, never in clear.
		assert.NotEqual(t, "senha123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture(t, []domain.User{{Email: "tomado@jetfleet.com", Active: true}})

		_, err := f.svc.Signup(ctx, "Outro", "Tomado@jetfleet.com", "senha123")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_AddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("requires at least one role", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		err := f.svc.AddUser(ctx, domain.User{Email: "x@jetfleet.com"}, "senha123")
		assert.ErrorIs(t, err, ErrNoRoles)
		f.client.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("hashes the password and creates", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.client.On("Insert", ctx, persistence.TableUsers, mock.MatchedBy(func(rec persistence.Record) bool {
			stored, _ := rec["password"].(string)
			return stored != "" && stored != "senha123"
		})).Return(nil, nil)

		err := f.svc.AddUser(ctx, domain.User{
			Email: "func@jetfleet.com",
			Name:  "Funcionario",
			Roles: domain.RoleSet{domain.RoleFuncionario},
		}, "senha123")
		require.NoError(t, err)
		f.client.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture(t, []domain.User{{Email: "dup@jetfleet.com"}})
		err := f.svc.AddUser(ctx, domain.User{
			Email: "dup@jetfleet.com",
			Roles: domain.RoleSet{domain.RoleGerente},
		}, "senha123")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_RecoveryEmailExists(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, nil)

	f.client.On("GetOne", ctx, persistence.TableUsers, "u-1").Return(persistence.Record{"id": "u-1"}, nil)
	f.client.On("GetOne", ctx, persistence.TableUsers, "u-2").Return(nil, persistence.ErrNotFound)
	f.client.On("GetOne", ctx, persistence.TableUsers, "u-3").Return(nil, assert.AnError)

	exists, err := f.svc.RecoveryEmailExists(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.svc.RecoveryEmailExists(ctx, "u-2")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = f.svc.RecoveryEmailExists(ctx, "u-3")
	assert.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture(t, nil)
	f.session.Establish(domain.User{Email: "ana@jetfleet.com"})

	f.svc.Logout()
	_, ok := f.session.Current()
	assert.False(t, ok)
}
