package sync

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jetfleet-backoffice/internal/persistence"
)

// MockClient is a testify mock of the persistence collaborator. List
// options are ignored on purpose: ordering is the collaborator's
// concern and irrelevant to these tests.
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
