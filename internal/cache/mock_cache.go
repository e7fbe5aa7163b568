package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockCache is a mock implementation of the Cache interface for testing.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetReply(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetReply(ctx context.Context, key string, reply string, ttl time.Duration) error {
	args := m.Called(ctx, key, reply, ttl)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
