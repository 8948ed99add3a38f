package impl

import (
	"context"
	"testing"

	"rpromo/internal/domain/entity"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/service"
	mockRepo "rpromo/internal/mocks/repository"
	mockService "rpromo/internal/mocks/service"
	"rpromo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// photoFixtures holds all test dependencies for photo service tests.
type photoFixtures struct {
	service   usecase.PhotoUsecase
	registry  registryFixtures
	processor *mockService.MockPhotoProcessor
	store     *mockRepo.MockPhotoStore
}

func createTestPhotoService(t *testing.T) photoFixtures {
	registry := createTestRegistry(t)
	processor := mockService.NewMockPhotoProcessor(t)
	store := mockRepo.NewMockPhotoStore(t)

	svc := NewPhotoService(PhotoServiceParams{
		Registry:  registry.registry,
		Processor: processor,
		Store:     store,
		Logger:    discardLogger(),
	})

	return photoFixtures{
		service:   svc,
		registry:  registry,
		processor: processor,
		store:     store,
	}
}

func TestPhotoService_Upload_Success(t *testing.T) {
	fx := createTestPhotoService(t)
	ctx := context.Background()
	person := registryPerson("Maria da Silva", "Centro", entity.StatusActive)

	fx.registry.provider.On("GetByID", mock.Anything, person.ID).Return(person, nil)
	fx.processor.On("Process", "perfil.jpg", "image/jpeg", []byte("raw")).Return(&service.ProcessedPhoto{
		Data:     []byte("processed"),
		MIMEType: "image/jpeg",
		Width:    800,
		Height:   600,
	}, nil)
	fx.store.On("Put", ctx, mock.AnythingOfType("*entity.Photo"), []byte("processed")).Return(nil)

	photo, err := fx.service.Upload(ctx, &usecase.UploadPhotoInput{
		PersonID: person.ID,
		Name:     "perfil.jpg",
		MIMEType: "image/jpeg",
		Category: entity.PhotoProfile,
		Data:     []byte("raw"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, photo.ID)
	assert.Equal(t, person.ID, photo.PersonID)
	assert.Equal(t, int64(len("processed")), photo.Size)
	assert.False(t, photo.UploadedAt.IsZero())
}

func TestPhotoService_Upload_InvalidCategoryNeverTouchesStore(t *testing.T) {
	fx := createTestPhotoService(t)

	_, err := fx.service.Upload(context.Background(), &usecase.UploadPhotoInput{
		PersonID: uuid.New(),
		Category: entity.PhotoCategory("selfie"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhotoCategory)
	fx.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestPhotoService_Upload_RejectedPayloadNeverTouchesStore(t *testing.T) {
	fx := createTestPhotoService(t)
	person := registryPerson("Maria da Silva", "Centro", entity.StatusActive)

	fx.registry.provider.On("GetByID", mock.Anything, person.ID).Return(person, nil)
	fx.processor.On("Process", "virus.pdf", "application/pdf", mock.Anything).
		Return(nil, domainerrors.ErrPhotoNotImage)

	_, err := fx.service.Upload(context.Background(), &usecase.UploadPhotoInput{
		PersonID: person.ID,
		Name:     "virus.pdf",
		MIMEType: "application/pdf",
		Category: entity.PhotoDocument,
		Data:     []byte("%PDF"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotImage)
	fx.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestPhotoService_Upload_UnknownPerson(t *testing.T) {
	fx := createTestPhotoService(t)
	id := uuid.New()

	fx.registry.provider.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrPersonNotFound)

	_, err := fx.service.Upload(context.Background(), &usecase.UploadPhotoInput{
		PersonID: id,
		Category: entity.PhotoProfile,
	})
	assert.Error(t, err)
	fx.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}
