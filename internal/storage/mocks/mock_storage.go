package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"propapi/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutOptions) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key, r, opt)
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) PresignGet(ctx context.Context, key, downloadName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, downloadName, expiry)
	return args.String(0), args.Error(1)
}
