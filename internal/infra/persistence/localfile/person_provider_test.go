package localfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rpromo/internal/domain/entity"
	"rpromo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) (repository.PersonProvider, string) {
	t.Helper()

	dir := t.TempDir()
	provider, err := NewPersonProvider(dir)
	require.NoError(t, err)

	return provider, dir
}

func testPerson(name string) *entity.Person {
	return &entity.Person{
		FullName:     name,
		CPF:          "123.456.789-09",
		Email:        "teste@example.com",
		Phone:        "(11) 98765-4321",
		Neighborhood: "Centro",
		City:         "São Paulo",
	}
}

func TestPersonProvider_CreateAssignsIdentityAndDefaults(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	created, err := provider.Create(ctx, testPerson("Maria da Silva"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, entity.StatusActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := provider.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestPersonProvider_GetByID_NotFound(t *testing.T) {
	provider, _ := newTestProvider(t)

	_, err := provider.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
}

func TestPersonProvider_Update_MergesPatch(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	created, err := provider.Create(ctx, testPerson("Maria da Silva"))
	require.NoError(t, err)

	city := "Campinas"
	updated, err := provider.Update(ctx, created.ID, repository.PersonPatch{City: &city})
	require.NoError(t, err)

	assert.Equal(t, "Campinas", updated.City)
	assert.Equal(t, created.FullName, updated.FullName)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = provider.Update(ctx, uuid.New(), repository.PersonPatch{City: &city})
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
}

func TestPersonProvider_Delete(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	created, err := provider.Create(ctx, testPerson("Maria da Silva"))
	require.NoError(t, err)

	ok, err := provider.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = provider.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)

	all, err := provider.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	ok, err = provider.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete reports unknown id")
}

func TestPersonProvider_GetAll_NewestFirst(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	first, err := provider.Create(ctx, testPerson("Primeira"))
	require.NoError(t, err)

	// Creation timestamps need to differ for the ordering to be visible.
	time.Sleep(2 * time.Millisecond)

	second, err := provider.Create(ctx, testPerson("Segunda"))
	require.NoError(t, err)

	all, err := provider.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestPersonProvider_Search_StatusPartition(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	active, err := provider.Create(ctx, testPerson("Ativa"))
	require.NoError(t, err)
	inactive, err := provider.Create(ctx, testPerson("Inativa"))
	require.NoError(t, err)

	status := entity.StatusInactive
	reason := "Desligamento"
	_, err = provider.Update(ctx, inactive.ID, repository.PersonPatch{
		Status:             &status,
		InactivationReason: &reason,
	})
	require.NoError(t, err)

	actives, err := provider.Search(ctx, repository.SearchFilters{Status: entity.StatusActive})
	require.NoError(t, err)
	require.Len(t, actives, 1)
	assert.Equal(t, active.ID, actives[0].ID)

	inactives, err := provider.Search(ctx, repository.SearchFilters{Status: entity.StatusInactive})
	require.NoError(t, err)
	require.Len(t, inactives, 1)
	assert.Equal(t, inactive.ID, inactives[0].ID)
}

func TestPersonProvider_Search_Idempotent(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	_, err := provider.Create(ctx, testPerson("Maria da Silva"))
	require.NoError(t, err)

	filters := repository.SearchFilters{Term: "maria"}
	first, err := provider.Search(ctx, filters)
	require.NoError(t, err)
	second, err := provider.Search(ctx, filters)
	require.NoError(t, err)

	assert.Equal(t, first, second, "searching does not mutate the stored collection")
}

func TestPersonProvider_RoundTrip_RehydratesDates(t *testing.T) {
	provider, dir := newTestProvider(t)
	ctx := context.Background()

	person := testPerson("Maria da Silva")
	person.BirthDate = time.Date(1990, 7, 22, 0, 0, 0, 0, time.UTC)
	person.HasChildren = true
	person.Children = []entity.Child{
		{Name: "João", BirthDate: time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	created, err := provider.Create(ctx, person)
	require.NoError(t, err)

	// A fresh provider over the same directory reads the same document.
	reopened, err := NewPersonProvider(dir)
	require.NoError(t, err)

	fetched, err := reopened.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.True(t, fetched.BirthDate.Equal(person.BirthDate))
	assert.True(t, fetched.CreatedAt.Equal(created.CreatedAt))
	require.Len(t, fetched.Children, 1)
	assert.True(t, fetched.Children[0].BirthDate.Equal(person.Children[0].BirthDate))
	assert.Equal(t, 1, fetched.ChildCount)
}

func TestPersonProvider_MissingFileIsEmptyCollection(t *testing.T) {
	provider, dir := newTestProvider(t)

	all, err := provider.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = os.Stat(filepath.Join(dir, collectionFile))
	assert.True(t, os.IsNotExist(err), "reading never creates the document")
}

func TestPersonProvider_CorruptDocumentFails(t *testing.T) {
	provider, dir := newTestProvider(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, collectionFile), []byte("{not json"), 0o644))

	_, err := provider.GetAll(context.Background())
	assert.Error(t, err)
}
