package store

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store using testify/mock.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Lookup(ctx context.Context, session, question string) (string, bool, error) {
	args := m.Called(ctx, session, question)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Record(ctx context.Context, session, question, answer string) (ChatRecord, error) {
	args := m.Called(ctx, session, question, answer)
	return args.Get(0).(ChatRecord), args.Error(1)
}

func (m *MockStore) ListSessions(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) History(ctx context.Context, session string) ([]Turn, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Turn), args.Error(1)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
