// Package localfile implements the person data provider on top of a single
// JSON document on local disk. It is the offline counterpart of the
// postgres provider: the whole collection is one serialized blob under a
// fixed name, and every write reads the document, mutates it in memory and
// writes it back.
package localfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"rpromo/internal/domain/entity"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// collectionFile is the fixed storage key for the serialized collection.
const collectionFile = "rpromo_pessoas.json"

// personProvider implements repository.PersonProvider on local disk.
// A mutex serializes the read-modify-write cycle: unlike the original
// single-threaded runtime, the server handles requests concurrently.
type personProvider struct {
	path string
	mu   sync.Mutex
}

// NewPersonProvider is the constructor for the local provider. The
// directory is created on first use.
func NewPersonProvider(dataPath string) (repository.PersonProvider, error) {
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}

	return &personProvider{path: filepath.Join(dataPath, collectionFile)}, nil
}

// Info returns static capability metadata about this backend.
func (repo *personProvider) Info() repository.ProviderInfo {
	return repository.ProviderInfo{
		Kind:             repository.ProviderLocalFile,
		Name:             "LocalFile Provider",
		Description:      "Armazena dados em arquivo local",
		SupportsRealTime: false,
		SupportsOffline:  true,
		RequiresAuth:     false,
	}
}

// GetAll returns every registration, newest first by creation time.
func (repo *personProvider) GetAll(ctx context.Context) ([]*entity.Person, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.loadSorted(ctx)
}

// GetByID returns one registration, or ErrPersonNotFound.
func (repo *personProvider) GetByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	people, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range people {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, repository.ErrPersonNotFound
}

// Create assigns an id and creation timestamp, persists the registration
// and returns the stored copy.
func (repo *personProvider) Create(ctx context.Context, person *entity.Person) (*entity.Person, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	people, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	stored := *person
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.Status == "" {
		stored.Status = entity.StatusActive
	}
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.NormalizeChildren()

	people = append(people, &stored)
	if err := repo.save(people); err != nil {
		return nil, err
	}

	result := stored

	return &result, nil
}

// Update merges the patch into the stored registration.
func (repo *personProvider) Update(ctx context.Context, id uuid.UUID, patch repository.PersonPatch) (*entity.Person, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	people, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range people {
		if p.ID != id {
			continue
		}

		patch.Apply(p)
		p.UpdatedAt = time.Now().UTC()

		if err := repo.save(people); err != nil {
			return nil, err
		}

		result := *p

		return &result, nil
	}

	return nil, repository.ErrPersonNotFound
}

// Delete removes a registration. False means the id was unknown.
func (repo *personProvider) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	people, err := repo.load(ctx)
	if err != nil {
		return false, err
	}

	for i, p := range people {
		if p.ID != id {
			continue
		}

		people = append(people[:i], people[i+1:]...)
		if err := repo.save(people); err != nil {
			return false, err
		}

		return true, nil
	}

	return false, nil
}

// Search applies the canonical in-memory matching over the newest-first
// collection, preserving relative order.
func (repo *personProvider) Search(ctx context.Context, filters repository.SearchFilters) ([]*entity.Person, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	people, err := repo.loadSorted(ctx)
	if err != nil {
		return nil, err
	}

	return filters.Filter(people), nil
}

// load reads and rehydrates the collection document in insertion order.
// A missing file is an empty collection, not an error.
func (repo *personProvider) load(ctx context.Context) ([]*entity.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	data, err := os.ReadFile(repo.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, domainerrors.ErrProviderUnavailable.WrapMessage("failed to read local collection")
	}

	var stored []storedPerson
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage("failed to parse local collection")
	}

	people := make([]*entity.Person, 0, len(stored))
	for _, sp := range stored {
		people = append(people, sp.toDomain())
	}

	return people, nil
}

func (repo *personProvider) loadSorted(ctx context.Context) ([]*entity.Person, error) {
	people, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(people, func(i, j int) bool {
		return people[i].CreatedAt.After(people[j].CreatedAt)
	})

	return people, nil
}

// save serializes the whole collection and replaces the document
// atomically via a temp file and rename.
func (repo *personProvider) save(people []*entity.Person) error {
	stored := make([]storedPerson, 0, len(people))
	for _, p := range people {
		stored = append(stored, fromDomain(p))
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize local collection")
	}

	tmp := repo.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return domainerrors.ErrProviderUnavailable.WrapMessage("failed to write local collection")
	}
	if err := os.Rename(tmp, repo.path); err != nil {
		return domainerrors.ErrProviderUnavailable.WrapMessage("failed to replace local collection")
	}

	return nil
}
