package impl

import (
	"context"
	"log/slog"

	"rpromo/internal/domain/repository"
	"rpromo/internal/usecase"

	"go.uber.org/fx"
)

// providerService implements the ProviderUsecase interface. A switch is a
// selector swap followed by a registry reload, so the collection shown to
// consumers always comes from the newly active backend.
type providerService struct {
	selector *ProviderSelector
	registry usecase.PersonUsecase
	logger   *slog.Logger
}

// ProviderServiceParams holds dependencies for providerService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	Selector *ProviderSelector
	Registry usecase.PersonUsecase
	Logger   *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		selector: params.Selector,
		registry: params.Registry,
		logger:   params.Logger,
	}
}

func (srv *providerService) Current() repository.ProviderInfo {
	return srv.selector.CurrentInfo()
}

func (srv *providerService) Available() []repository.ProviderInfo {
	return srv.selector.Available()
}

// Use switches the active provider and reloads the registry from it. A
// failed reload does not undo the switch: the registry keeps its stale
// snapshot with the error recorded, same as any other provider failure.
func (srv *providerService) Use(ctx context.Context, kind repository.ProviderKind) (repository.ProviderInfo, error) {
	info, err := srv.selector.Switch(kind)
	if err != nil {
		return repository.ProviderInfo{}, err
	}

	if err := srv.registry.Reload(ctx); err != nil {
		srv.logger.Warn("Reload after provider switch failed",
			slog.String("provider", string(kind)), slog.Any("error", err))
	}

	return info, nil
}
