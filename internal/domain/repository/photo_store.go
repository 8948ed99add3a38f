package repository

import (
	"context"
	"errors"

	"rpromo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPhotoNotFound is returned when an attachment id is unknown.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoStore persists attachment payloads and their metadata as two
// co-located keyed stores: blob bytes keyed by photo id, and a metadata
// index with secondary lookup by owning person id.
type PhotoStore interface {
	// Put stores the processed payload and its metadata atomically from
	// the caller's point of view: a failed blob write leaves no index entry.
	Put(ctx context.Context, photo *entity.Photo, payload []byte) error

	// Get returns the metadata and payload for one attachment.
	Get(ctx context.Context, id uuid.UUID) (*entity.Photo, []byte, error)

	// ListByPerson returns the metadata of every attachment owned by the
	// given registration, upload order preserved.
	ListByPerson(ctx context.Context, personID uuid.UUID) ([]*entity.Photo, error)

	// Delete removes one attachment and its metadata.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByPerson removes every attachment owned by the registration.
	// Used to cascade when the owning record is deleted.
	DeleteByPerson(ctx context.Context, personID uuid.UUID) error
}
