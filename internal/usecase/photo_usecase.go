package usecase

import (
	"context"

	"rpromo/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadPhotoInput carries one attachment upload. Data is the raw payload
// as received; validation and downscaling happen inside the usecase.
type UploadPhotoInput struct {
	PersonID uuid.UUID
	Name     string
	MIMEType string
	Category entity.PhotoCategory
	Data     []byte
}

// PhotoUsecase manages photo attachments on registrations.
type PhotoUsecase interface {
	// Upload validates and downscales the payload, then stores it under
	// the owning registration. Invalid uploads never reach the store.
	Upload(ctx context.Context, input *UploadPhotoInput) (*entity.Photo, error)

	// Get returns the metadata and payload for one attachment.
	Get(ctx context.Context, id uuid.UUID) (*entity.Photo, []byte, error)

	// ListByPerson returns the attachments of one registration.
	ListByPerson(ctx context.Context, personID uuid.UUID) ([]*entity.Photo, error)

	// Delete removes one attachment.
	Delete(ctx context.Context, id uuid.UUID) error
}
