// Package photostore keeps attachment payloads in a blob bucket with a
// JSON metadata index alongside. The bucket defaults to a directory under
// the local data path; any gocloud.dev blob URL works in its place.
package photostore

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"sync"

	"rpromo/config"
	"rpromo/internal/domain/entity"
	"rpromo/internal/domain/lifecycle"
	"rpromo/internal/domain/repository"
	"rpromo/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

const (
	indexKey  = "fotos/index.json"
	blobDir   = "fotos/blobs"
	bucketDir = "fotos"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type photoStore struct {
	bucket *blob.Bucket

	// mu serializes index read-modify-write cycles.
	mu sync.Mutex
}

// New opens the attachment bucket and wires its shutdown into the
// application lifecycle.
func New(params Params) (repository.PhotoStore, error) {
	var (
		bucket *blob.Bucket
		err    error
	)

	if url := params.Config.Photo.BucketURL; url != "" {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		bucket, err = blob.OpenBucket(ctx, url)
	} else {
		dir := filepath.Join(params.Config.Storage.DataPath, bucketDir)
		bucket, err = fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &photoStore{bucket: bucket}, nil
}

// Put writes the payload first and records the index entry only after the
// blob write succeeds, so a failed write never leaves dangling metadata.
func (store *photoStore) Put(ctx context.Context, photo *entity.Photo, payload []byte) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	opts := &blob.WriterOptions{ContentType: photo.MIMEType}
	if err := store.bucket.WriteAll(ctx, blobKey(photo.ID), payload, opts); err != nil {
		return errors.Wrap(err, "failed to write photo payload")
	}

	index, err := store.loadIndex(ctx)
	if err != nil {
		return err
	}

	index = append(index, photo)
	if err := store.saveIndex(ctx, index); err != nil {
		// Roll the payload back so the two stores stay consistent.
		_ = store.bucket.Delete(ctx, blobKey(photo.ID))

		return err
	}

	return nil
}

// Get returns the metadata and payload for one attachment.
func (store *photoStore) Get(ctx context.Context, id uuid.UUID) (*entity.Photo, []byte, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index, err := store.loadIndex(ctx)
	if err != nil {
		return nil, nil, err
	}

	for _, photo := range index {
		if photo.ID != id {
			continue
		}

		payload, err := store.bucket.ReadAll(ctx, blobKey(id))
		if err != nil {
			if gcerrors.Code(err) == gcerrors.NotFound {
				return nil, nil, repository.ErrPhotoNotFound
			}

			return nil, nil, errors.Wrap(err, "failed to read photo payload")
		}

		return photo, payload, nil
	}

	return nil, nil, repository.ErrPhotoNotFound
}

// ListByPerson returns metadata for every attachment of one registration,
// upload order preserved.
func (store *photoStore) ListByPerson(ctx context.Context, personID uuid.UUID) ([]*entity.Photo, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index, err := store.loadIndex(ctx)
	if err != nil {
		return nil, err
	}

	photos := make([]*entity.Photo, 0)
	for _, photo := range index {
		if photo.PersonID == personID {
			photos = append(photos, photo)
		}
	}

	return photos, nil
}

// Delete removes one attachment and its index entry.
func (store *photoStore) Delete(ctx context.Context, id uuid.UUID) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	index, err := store.loadIndex(ctx)
	if err != nil {
		return err
	}

	for i, photo := range index {
		if photo.ID != id {
			continue
		}

		index = append(index[:i], index[i+1:]...)
		if err := store.saveIndex(ctx, index); err != nil {
			return err
		}

		if err := store.bucket.Delete(ctx, blobKey(id)); err != nil &&
			gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrap(err, "failed to delete photo payload")
		}

		return nil
	}

	return repository.ErrPhotoNotFound
}

// DeleteByPerson removes every attachment owned by the registration.
func (store *photoStore) DeleteByPerson(ctx context.Context, personID uuid.UUID) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	index, err := store.loadIndex(ctx)
	if err != nil {
		return err
	}

	kept := make([]*entity.Photo, 0, len(index))
	removed := make([]uuid.UUID, 0)
	for _, photo := range index {
		if photo.PersonID == personID {
			removed = append(removed, photo.ID)
		} else {
			kept = append(kept, photo)
		}
	}

	if len(removed) == 0 {
		return nil
	}

	if err := store.saveIndex(ctx, kept); err != nil {
		return err
	}

	for _, id := range removed {
		if err := store.bucket.Delete(ctx, blobKey(id)); err != nil &&
			gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrap(err, "failed to delete photo payload")
		}
	}

	return nil
}

func (store *photoStore) loadIndex(ctx context.Context) ([]*entity.Photo, error) {
	data, err := store.bucket.ReadAll(ctx, indexKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read photo index")
	}

	var index []*entity.Photo
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, errors.Wrap(err, "failed to parse photo index")
	}

	return index, nil
}

func (store *photoStore) saveIndex(ctx context.Context, index []*entity.Photo) error {
	data, err := json.Marshal(index)
	if err != nil {
		return errors.Wrap(err, "failed to serialize photo index")
	}

	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := store.bucket.WriteAll(ctx, indexKey, data, opts); err != nil {
		return errors.Wrap(err, "failed to write photo index")
	}

	return nil
}

func blobKey(id uuid.UUID) string {
	return blobDir + "/" + id.String()
}
