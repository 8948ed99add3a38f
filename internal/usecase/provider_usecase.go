package usecase

import (
	"context"

	"rpromo/internal/domain/repository"
)

// ProviderUsecase selects which storage backend the registry talks to.
type ProviderUsecase interface {
	// Current returns metadata about the active provider.
	Current() repository.ProviderInfo

	// Available lists every registered provider.
	Available() []repository.ProviderInfo

	// Use switches the active provider to the given kind and reloads the
	// registry from it. Unknown kinds are rejected and the active provider
	// stays unchanged.
	Use(ctx context.Context, kind repository.ProviderKind) (repository.ProviderInfo, error)
}
