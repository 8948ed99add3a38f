// Package repository contains hand-written testify mocks for the
// persistence contracts.
package repository

import (
	"context"
	"testing"

	"rpromo/internal/domain/entity"
	"rpromo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPersonProvider is a testify mock for repository.PersonProvider.
type MockPersonProvider struct {
	mock.Mock
}

// NewMockPersonProvider builds a mock bound to the test lifecycle.
func NewMockPersonProvider(t *testing.T) *MockPersonProvider {
	m := &MockPersonProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPersonProvider) GetAll(ctx context.Context) ([]*entity.Person, error) {
	args := m.Called(ctx)
	people, _ := args.Get(0).([]*entity.Person)

	return people, args.Error(1)
}

func (m *MockPersonProvider) GetByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	args := m.Called(ctx, id)
	person, _ := args.Get(0).(*entity.Person)

	return person, args.Error(1)
}

func (m *MockPersonProvider) Create(ctx context.Context, person *entity.Person) (*entity.Person, error) {
	args := m.Called(ctx, person)
	created, _ := args.Get(0).(*entity.Person)

	return created, args.Error(1)
}

func (m *MockPersonProvider) Update(ctx context.Context, id uuid.UUID, patch repository.PersonPatch) (*entity.Person, error) {
	args := m.Called(ctx, id, patch)
	updated, _ := args.Get(0).(*entity.Person)

	return updated, args.Error(1)
}

func (m *MockPersonProvider) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockPersonProvider) Search(ctx context.Context, filters repository.SearchFilters) ([]*entity.Person, error) {
	args := m.Called(ctx, filters)
	people, _ := args.Get(0).([]*entity.Person)

	return people, args.Error(1)
}

func (m *MockPersonProvider) Info() repository.ProviderInfo {
	args := m.Called()

	return args.Get(0).(repository.ProviderInfo)
}
