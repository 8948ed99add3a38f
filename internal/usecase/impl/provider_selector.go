// Package impl contains the implementation of the application's business logic.
package impl

import (
	"log/slog"
	"sync"

	"rpromo/config"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/repository"

	"go.uber.org/fx"
)

// ProviderSelector holds the set of registered storage providers and the
// one currently active. The set is fixed at construction; only the active
// pointer changes. Switching never touches the provider being switched
// away from.
type ProviderSelector struct {
	mu         sync.RWMutex
	registered map[repository.ProviderKind]repository.PersonProvider
	order      []repository.ProviderKind
	current    repository.PersonProvider
	logger     *slog.Logger
}

// ProviderSelectorParams holds dependencies for the selector, injected by Fx.
// The remote provider is nil when Postgres is not configured.
type ProviderSelectorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Local  repository.PersonProvider `name:"localfile"`
	Remote repository.PersonProvider `name:"postgres" optional:"true"`
}

// NewProviderSelector registers every implemented provider and activates
// the one named in the configuration.
func NewProviderSelector(params ProviderSelectorParams) (*ProviderSelector, error) {
	selector := &ProviderSelector{
		registered: make(map[repository.ProviderKind]repository.PersonProvider),
		logger:     params.Logger,
	}

	selector.register(repository.ProviderLocalFile, params.Local)
	selector.register(repository.ProviderPostgres, params.Remote)

	defaultKind := repository.ProviderKind(params.Config.Storage.Provider)
	provider, ok := selector.registered[defaultKind]
	if !ok {
		return nil, domainerrors.ErrUnknownProvider.WithDetails(string(defaultKind))
	}
	selector.current = provider

	params.Logger.Info("Storage provider active",
		slog.String("provider", string(defaultKind)))

	return selector, nil
}

func (selector *ProviderSelector) register(kind repository.ProviderKind, provider repository.PersonProvider) {
	if provider == nil {
		return
	}

	selector.registered[kind] = provider
	selector.order = append(selector.order, kind)
}

// Current returns the active provider.
func (selector *ProviderSelector) Current() repository.PersonProvider {
	selector.mu.RLock()
	defer selector.mu.RUnlock()

	return selector.current
}

// CurrentInfo returns metadata about the active provider.
func (selector *ProviderSelector) CurrentInfo() repository.ProviderInfo {
	return selector.Current().Info()
}

// Available lists every registered provider in registration order.
func (selector *ProviderSelector) Available() []repository.ProviderInfo {
	selector.mu.RLock()
	defer selector.mu.RUnlock()

	infos := make([]repository.ProviderInfo, 0, len(selector.order))
	for _, kind := range selector.order {
		infos = append(infos, selector.registered[kind].Info())
	}

	return infos
}

// Switch activates the provider of the given kind. Unknown kinds are
// rejected with a warning and the active provider stays unchanged.
func (selector *ProviderSelector) Switch(kind repository.ProviderKind) (repository.ProviderInfo, error) {
	selector.mu.Lock()
	defer selector.mu.Unlock()

	provider, ok := selector.registered[kind]
	if !ok {
		selector.logger.Warn("Rejected switch to unknown storage provider",
			slog.String("provider", string(kind)))

		return repository.ProviderInfo{}, domainerrors.ErrUnknownProvider.WithDetails(string(kind))
	}

	selector.current = provider
	selector.logger.Info("Storage provider switched",
		slog.String("provider", string(kind)))

	return provider.Info(), nil
}
