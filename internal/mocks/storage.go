package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockKeyValueStorage struct {
	mock.Mock
}

func NewMockKeyValueStorage() *MockKeyValueStorage {
	return &MockKeyValueStorage{}
}

func (m *MockKeyValueStorage) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKeyValueStorage) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockKeyValueStorage) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
