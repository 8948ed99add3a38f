package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rpromo/internal/delivery/context"
	"rpromo/internal/domain/entity"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/repository"
	"rpromo/internal/domain/service"
	"rpromo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// photoService implements the PhotoUsecase interface.
type photoService struct {
	registry  usecase.PersonUsecase
	processor service.PhotoProcessor
	store     repository.PhotoStore
	logger    *slog.Logger
}

// PhotoServiceParams holds dependencies for photoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	Registry  usecase.PersonUsecase
	Processor service.PhotoProcessor
	Store     repository.PhotoStore
	Logger    *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	return &photoService{
		registry:  params.Registry,
		processor: params.Processor,
		store:     params.Store,
		logger:    params.Logger,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload validates, downscales and stores one attachment. Validation and
// processing run before anything touches the store, so a rejected upload
// leaves no partial state behind.
func (srv *photoService) Upload(ctx context.Context, input *usecase.UploadPhotoInput) (*entity.Photo, error) {
	if !input.Category.Valid() {
		return nil, domainerrors.ErrInvalidPhotoCategory.WithDetails(string(input.Category))
	}

	// The owning registration must exist.
	if _, err := srv.registry.Get(ctx, input.PersonID); err != nil {
		return nil, err
	}

	processed, err := srv.processor.Process(input.Name, input.MIMEType, input.Data)
	if err != nil {
		return nil, err
	}

	photo := &entity.Photo{
		ID:         uuid.New(),
		Name:       input.Name,
		MIMEType:   processed.MIMEType,
		Size:       int64(len(processed.Data)),
		PersonID:   input.PersonID,
		Category:   input.Category,
		UploadedAt: time.Now().UTC(),
	}

	if err := srv.store.Put(ctx, photo, processed.Data); err != nil {
		srv.log(ctx).Error("Failed to store photo",
			slog.Any("personID", input.PersonID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store photo")
	}

	srv.log(ctx).Info("Photo stored",
		slog.Any("photoID", photo.ID),
		slog.Any("personID", input.PersonID),
		slog.Int("width", processed.Width),
		slog.Int("height", processed.Height))

	return photo, nil
}

func (srv *photoService) Get(ctx context.Context, id uuid.UUID) (*entity.Photo, []byte, error) {
	photo, payload, err := srv.store.Get(ctx, id)
	if errors.Is(err, repository.ErrPhotoNotFound) {
		return nil, nil, domainerrors.ErrPhotoNotFound
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get photo")
	}

	return photo, payload, nil
}

func (srv *photoService) ListByPerson(ctx context.Context, personID uuid.UUID) ([]*entity.Photo, error) {
	photos, err := srv.store.ListByPerson(ctx, personID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list photos")
	}

	return photos, nil
}

func (srv *photoService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.store.Delete(ctx, id)
	if errors.Is(err, repository.ErrPhotoNotFound) {
		return domainerrors.ErrPhotoNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete photo")
	}

	srv.log(ctx).Info("Photo removed", slog.Any("photoID", id))

	return nil
}
