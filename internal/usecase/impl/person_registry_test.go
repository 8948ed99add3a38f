package impl

import (
	"context"
	"testing"
	"time"

	"rpromo/config"
	"rpromo/internal/domain/entity"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/repository"
	mockRepo "rpromo/internal/mocks/repository"
	"rpromo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// registryFixtures holds all test dependencies for registry tests.
type registryFixtures struct {
	registry usecase.PersonUsecase
	provider *mockRepo.MockPersonProvider
	photos   *mockRepo.MockPhotoStore
}

func createTestRegistry(t *testing.T) registryFixtures {
	provider := mockRepo.NewMockPersonProvider(t)
	provider.On("Info").Return(localInfo()).Maybe()
	photos := mockRepo.NewMockPhotoStore(t)

	selector, err := NewProviderSelector(ProviderSelectorParams{
		Config: selectorConfig("localfile"),
		Logger: discardLogger(),
		Local:  provider,
	})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Storage.OperationTimeout = time.Second

	registry := NewPersonRegistry(PersonRegistryParams{
		Selector:   selector,
		PhotoStore: photos,
		Config:     cfg,
		Logger:     discardLogger(),
	})

	return registryFixtures{
		registry: registry,
		provider: provider,
		photos:   photos,
	}
}

func registryPerson(name, neighborhood string, status entity.Status) *entity.Person {
	return &entity.Person{
		ID:           uuid.New(),
		FullName:     name,
		Neighborhood: neighborhood,
		City:         "São Paulo",
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestPersonRegistry_List_PublishesSnapshot(t *testing.T) {
	fx := createTestRegistry(t)

	people := []*entity.Person{
		registryPerson("Maria da Silva", "Centro", entity.StatusActive),
		registryPerson("João Pereira", "Jardins", entity.StatusActive),
	}
	fx.provider.On("GetAll", mock.Anything).Return(people, nil)

	snapshot, err := fx.registry.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, snapshot.People, 2)
	assert.False(t, snapshot.Loading)
	assert.Empty(t, snapshot.LastError)
}

func TestPersonRegistry_List_KeepsStaleSnapshotOnFailure(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()

	people := []*entity.Person{registryPerson("Maria da Silva", "Centro", entity.StatusActive)}
	fx.provider.On("GetAll", mock.Anything).Return(people, nil).Once()

	_, err := fx.registry.List(ctx)
	require.NoError(t, err)

	fx.provider.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused"))

	snapshot, err := fx.registry.List(ctx)
	require.Error(t, err)

	assert.Len(t, snapshot.People, 1, "previous collection stays visible")
	assert.Contains(t, snapshot.LastError, "connection refused")

	// A later successful load clears the recorded error.
	fx.provider.ExpectedCalls = nil
	fx.provider.On("GetAll", mock.Anything).Return(people, nil)

	snapshot, err = fx.registry.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshot.LastError)
}

func TestPersonRegistry_Get_MapsNotFound(t *testing.T) {
	fx := createTestRegistry(t)
	id := uuid.New()

	fx.provider.On("GetByID", mock.Anything, id).Return(nil, repository.ErrPersonNotFound)

	_, err := fx.registry.Get(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}

func TestPersonRegistry_Create_RefreshesSnapshot(t *testing.T) {
	fx := createTestRegistry(t)

	created := registryPerson("Maria da Silva", "Centro", entity.StatusActive)
	fx.provider.On("Create", mock.Anything, mock.AnythingOfType("*entity.Person")).Return(created, nil)
	fx.provider.On("GetAll", mock.Anything).Return([]*entity.Person{created}, nil)

	person, err := fx.registry.Create(context.Background(), &usecase.CreatePersonInput{
		FullName: "Maria da Silva",
		CPF:      "123.456.789-09",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, person.ID)
}

func TestPersonRegistry_Delete_CascadesPhotos(t *testing.T) {
	fx := createTestRegistry(t)
	id := uuid.New()

	fx.provider.On("Delete", mock.Anything, id).Return(true, nil)
	fx.photos.On("DeleteByPerson", mock.Anything, id).Return(nil)
	fx.provider.On("GetAll", mock.Anything).Return([]*entity.Person{}, nil)

	err := fx.registry.Delete(context.Background(), id)
	require.NoError(t, err)
}

func TestPersonRegistry_Delete_UnknownID(t *testing.T) {
	fx := createTestRegistry(t)
	id := uuid.New()

	fx.provider.On("Delete", mock.Anything, id).Return(false, nil)

	err := fx.registry.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}

func TestPersonRegistry_ChangeStatus_InactiveRequiresReason(t *testing.T) {
	fx := createTestRegistry(t)

	_, err := fx.registry.ChangeStatus(context.Background(), uuid.New(), &usecase.ChangeStatusInput{
		Status: "Inativo",
		Reason: "   ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInactivationReasonRequired)
}

func TestPersonRegistry_ChangeStatus_ActiveClearsReason(t *testing.T) {
	fx := createTestRegistry(t)
	id := uuid.New()

	updated := registryPerson("Maria da Silva", "Centro", entity.StatusActive)
	fx.provider.On("Update", mock.Anything, id, mock.MatchedBy(func(patch repository.PersonPatch) bool {
		return patch.Status != nil && *patch.Status == entity.StatusActive &&
			patch.InactivationReason != nil && *patch.InactivationReason == ""
	})).Return(updated, nil)
	fx.provider.On("GetAll", mock.Anything).Return([]*entity.Person{updated}, nil)

	_, err := fx.registry.ChangeStatus(context.Background(), id, &usecase.ChangeStatusInput{
		Status: "Ativo",
		Reason: "ignorado",
	})
	require.NoError(t, err)
}

func TestPersonRegistry_ChangeStatus_InvalidStatus(t *testing.T) {
	fx := createTestRegistry(t)

	_, err := fx.registry.ChangeStatus(context.Background(), uuid.New(), &usecase.ChangeStatusInput{
		Status: "Pendente",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestPersonRegistry_Search_PassesFilters(t *testing.T) {
	fx := createTestRegistry(t)

	centro := registryPerson("Maria da Silva", "Centro", entity.StatusActive)
	fx.provider.On("Search", mock.Anything, mock.MatchedBy(func(f repository.SearchFilters) bool {
		return f.Neighborhood == "Centro"
	})).Return([]*entity.Person{centro}, nil)

	people, err := fx.registry.Search(context.Background(), usecase.SearchInput{Neighborhood: "Centro"})
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Centro", people[0].Neighborhood)
}

func TestPersonRegistry_StatsAndFilterOptions(t *testing.T) {
	fx := createTestRegistry(t)

	people := []*entity.Person{
		registryPerson("Maria da Silva", "Centro", entity.StatusActive),
		registryPerson("João Pereira", "Centro", entity.StatusInactive),
		registryPerson("Ana Souza", "Jardins", entity.StatusActive),
	}
	fx.provider.On("GetAll", mock.Anything).Return(people, nil)

	stats, err := fx.registry.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Inactive)
	assert.Equal(t, 2, stats.ByNeighborhood["Centro"])
	assert.Equal(t, 3, stats.ByCity["São Paulo"])

	options, err := fx.registry.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Centro", "Jardins"}, options.Neighborhoods)
	assert.Equal(t, []string{"São Paulo"}, options.Cities)
}
