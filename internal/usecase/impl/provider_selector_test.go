package impl

import (
	"io"
	"log/slog"
	"testing"

	"rpromo/config"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/repository"
	mockRepo "rpromo/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func selectorConfig(provider string) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Provider = provider

	return cfg
}

func localInfo() repository.ProviderInfo {
	return repository.ProviderInfo{Kind: repository.ProviderLocalFile, Name: "LocalFile Provider", SupportsOffline: true}
}

func remoteInfo() repository.ProviderInfo {
	return repository.ProviderInfo{Kind: repository.ProviderPostgres, Name: "PostgreSQL Provider", SupportsRealTime: true}
}

func TestNewProviderSelector_DefaultsFromConfig(t *testing.T) {
	local := mockRepo.NewMockPersonProvider(t)
	remote := mockRepo.NewMockPersonProvider(t)
	remote.On("Info").Return(remoteInfo())

	selector, err := NewProviderSelector(ProviderSelectorParams{
		Config: selectorConfig("postgres"),
		Logger: discardLogger(),
		Local:  local,
		Remote: remote,
	})
	require.NoError(t, err)

	assert.Equal(t, repository.ProviderPostgres, selector.CurrentInfo().Kind)
}

func TestNewProviderSelector_UnknownDefaultRejected(t *testing.T) {
	local := mockRepo.NewMockPersonProvider(t)

	_, err := NewProviderSelector(ProviderSelectorParams{
		Config: selectorConfig("firebase"),
		Logger: discardLogger(),
		Local:  local,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownProvider)
}

func TestNewProviderSelector_SkipsNilProvider(t *testing.T) {
	local := mockRepo.NewMockPersonProvider(t)
	local.On("Info").Return(localInfo())

	selector, err := NewProviderSelector(ProviderSelectorParams{
		Config: selectorConfig("localfile"),
		Logger: discardLogger(),
		Local:  local,
		Remote: nil,
	})
	require.NoError(t, err)

	available := selector.Available()
	require.Len(t, available, 1)
	assert.Equal(t, repository.ProviderLocalFile, available[0].Kind)

	_, err = selector.Switch(repository.ProviderPostgres)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownProvider)
}

func TestProviderSelector_Switch(t *testing.T) {
	local := mockRepo.NewMockPersonProvider(t)
	local.On("Info").Return(localInfo())
	remote := mockRepo.NewMockPersonProvider(t)
	remote.On("Info").Return(remoteInfo())

	selector, err := NewProviderSelector(ProviderSelectorParams{
		Config: selectorConfig("localfile"),
		Logger: discardLogger(),
		Local:  local,
		Remote: remote,
	})
	require.NoError(t, err)

	info, err := selector.Switch(repository.ProviderPostgres)
	require.NoError(t, err)
	assert.Equal(t, repository.ProviderPostgres, info.Kind)
	assert.Same(t, remote, selector.Current())
}

func TestProviderSelector_UnknownSwitchKeepsCurrent(t *testing.T) {
	local := mockRepo.NewMockPersonProvider(t)
	local.On("Info").Return(localInfo())

	selector, err := NewProviderSelector(ProviderSelectorParams{
		Config: selectorConfig("localfile"),
		Logger: discardLogger(),
		Local:  local,
	})
	require.NoError(t, err)

	_, err = selector.Switch(repository.ProviderKind("indexeddb"))
	assert.ErrorIs(t, err, domainerrors.ErrUnknownProvider)
	assert.Equal(t, repository.ProviderLocalFile, selector.CurrentInfo().Kind)
}
