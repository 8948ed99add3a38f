package impl

import (
	"context"
	"testing"
	"time"

	"rpromo/internal/domain/entity"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/repository"
	mockRepo "rpromo/internal/mocks/repository"
	mockService "rpromo/internal/mocks/service"
	"rpromo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authFixtures holds all test dependencies for auth service tests.
type authFixtures struct {
	service  usecase.AuthUsecase
	accounts *mockRepo.MockAccountRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authFixtures {
	accounts := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		Accounts:     accounts,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       discardLogger(),
	})

	return authFixtures{
		service:  service,
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func activeAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Username:     "operador",
		PasswordHash: "$2a$10$hash",
		FullName:     "Operador RPromo",
		Active:       true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := activeAccount()

	fx.accounts.On("FindByUsername", ctx, "operador").Return(account, nil)
	fx.hasher.On("Check", "senha-forte", account.PasswordHash).Return(true)
	fx.tokens.On("Generate", account.ID, "operador").Return("signed-token", nil)
	fx.tokens.On("TTL").Return(12 * time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "operador", Password: "senha-forte"})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, int64(12*60*60), output.ExpiresIn)
	assert.Equal(t, "operador", output.Username)
	assert.Equal(t, "Operador RPromo", output.FullName)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := activeAccount()

	fx.accounts.On("FindByUsername", ctx, "fantasma").Return(nil, repository.ErrAccountNotFound)
	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "fantasma", Password: "x"})

	fx.accounts.On("FindByUsername", ctx, "operador").Return(account, nil)
	fx.hasher.On("Check", "errada", account.PasswordHash).Return(false)
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "operador", Password: "errada"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	account := activeAccount()
	account.Active = false
	fx.accounts.On("FindByUsername", ctx, "operador").Return(account, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "operador", Password: "senha"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestAuthService_Login_NoAccountStore(t *testing.T) {
	service := NewAuthService(AuthServiceParams{
		Accounts:     nil,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: mockService.NewMockTokenService(t),
		Logger:       discardLogger(),
	})

	_, err := service.Login(context.Background(), &usecase.LoginInput{Username: "x", Password: "y"})
	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
}
