package impl

import (
	"context"
	"log/slog"

	deliverycontext "rpromo/internal/delivery/context"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/repository"
	"rpromo/internal/domain/service"
	"rpromo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accounts     repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Accounts     repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accounts:     params.Accounts,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	// Accounts live in Postgres; a localfile-only deployment has no login.
	if srv.accounts == nil {
		return nil, domainerrors.ErrProviderUnavailable.WithDetails("account store not configured")
	}

	account, err := srv.accounts.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up account",
			slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !account.Active {
		return nil, domainerrors.ErrAccountInactive
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Rejected login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(account.ID, account.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Operator logged in", slog.String("username", account.Username))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokenService.TTL().Seconds()),
		Username:    account.Username,
		FullName:    account.FullName,
	}, nil
}
