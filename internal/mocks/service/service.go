// Package service contains hand-written testify mocks for the domain
// service contracts.
package service

import (
	"testing"
	"time"

	"rpromo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher builds a mock bound to the test lifecycle.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService builds a mock bound to the test lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Generate(accountID uuid.UUID, username string) (string, error) {
	args := m.Called(accountID, username)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) TTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockPhotoProcessor is a testify mock for service.PhotoProcessor.
type MockPhotoProcessor struct {
	mock.Mock
}

// NewMockPhotoProcessor builds a mock bound to the test lifecycle.
func NewMockPhotoProcessor(t *testing.T) *MockPhotoProcessor {
	m := &MockPhotoProcessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPhotoProcessor) Process(name, mimeType string, data []byte) (*service.ProcessedPhoto, error) {
	args := m.Called(name, mimeType, data)
	processed, _ := args.Get(0).(*service.ProcessedPhoto)

	return processed, args.Error(1)
}
