package repository

import (
	"context"
	"testing"

	"rpromo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPhotoStore is a testify mock for repository.PhotoStore.
type MockPhotoStore struct {
	mock.Mock
}

// NewMockPhotoStore builds a mock bound to the test lifecycle.
func NewMockPhotoStore(t *testing.T) *MockPhotoStore {
	m := &MockPhotoStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPhotoStore) Put(ctx context.Context, photo *entity.Photo, payload []byte) error {
	args := m.Called(ctx, photo, payload)

	return args.Error(0)
}

func (m *MockPhotoStore) Get(ctx context.Context, id uuid.UUID) (*entity.Photo, []byte, error) {
	args := m.Called(ctx, id)
	photo, _ := args.Get(0).(*entity.Photo)
	payload, _ := args.Get(1).([]byte)

	return photo, payload, args.Error(2)
}

func (m *MockPhotoStore) ListByPerson(ctx context.Context, personID uuid.UUID) ([]*entity.Photo, error) {
	args := m.Called(ctx, personID)
	photos, _ := args.Get(0).([]*entity.Photo)

	return photos, args.Error(1)
}

func (m *MockPhotoStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockPhotoStore) DeleteByPerson(ctx context.Context, personID uuid.UUID) error {
	args := m.Called(ctx, personID)

	return args.Error(0)
}
