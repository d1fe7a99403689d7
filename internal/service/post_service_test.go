package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"socialnet/internal/models"
	"socialnet/internal/repository"
)

type mockImageRepository struct {
	mock.Mock
}

func (m *mockImageRepository) Create(ctx context.Context, image *models.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *mockImageRepository) GetByID(ctx context.Context, imageID string) (*models.Image, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *mockImageRepository) GetByPostID(ctx context.Context, postID string) ([]*models.Image, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Image), args.Error(1)
}

func (m *mockImageRepository) Delete(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadImage(ctx context.Context, postID string, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, postID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func newTestPostService(imageRepo repository.ImageRepository, storage *mockStorage) PostService {
	return NewPostService(nil, nil, imageRepo, storage, nil)
}

func TestPostService_DeleteImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Удаляются запись и объект", func(t *testing.T) {
		imageRepo := new(mockImageRepository)
		storage := new(mockStorage)
		s := newTestPostService(imageRepo, storage)

		image := &models.Image{
			ImageID:    "image-1",
			PostID:     "post-1",
			ObjectName: "posts/post-1/2026/08/a.jpg",
		}
		imageRepo.On("GetByID", mock.Anything, "image-1").Return(image, nil)
		imageRepo.On("Delete", mock.Anything, "image-1").Return(nil)
		storage.On("DeleteImage", mock.Anything, image.ObjectName).Return(nil)

		err := s.DeleteImage(ctx, "post-1", "image-1")

		assert.NoError(t, err)
		imageRepo.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("Изображение другого поста не удаляется", func(t *testing.T) {
		imageRepo := new(mockImageRepository)
		storage := new(mockStorage)
		s := newTestPostService(imageRepo, storage)

		image := &models.Image{ImageID: "image-1", PostID: "post-2", ObjectName: "x"}
		imageRepo.On("GetByID", mock.Anything, "image-1").Return(image, nil)

		err := s.DeleteImage(ctx, "post-1", "image-1")

		assert.ErrorIs(t, err, repository.ErrImageNotFound)
		imageRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		storage.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything)
	})

	t.Run("Несуществующее изображение", func(t *testing.T) {
		imageRepo := new(mockImageRepository)
		storage := new(mockStorage)
		s := newTestPostService(imageRepo, storage)

		imageRepo.On("GetByID", mock.Anything, "missing").
			Return(nil, repository.ErrImageNotFound)

		err := s.DeleteImage(ctx, "post-1", "missing")

		assert.ErrorIs(t, err, repository.ErrImageNotFound)
	})

	t.Run("Ошибка хранилища не отменяет удаление записи", func(t *testing.T) {
		imageRepo := new(mockImageRepository)
		storage := new(mockStorage)
		s := newTestPostService(imageRepo, storage)

		image := &models.Image{ImageID: "image-1", PostID: "post-1", ObjectName: "x"}
		imageRepo.On("GetByID", mock.Anything, "image-1").Return(image, nil)
		imageRepo.On("Delete", mock.Anything, "image-1").Return(nil)
		storage.On("DeleteImage", mock.Anything, "x").Return(errors.New("minio недоступен"))

		// Запись уже удалена, осиротевший объект только логируется
		err := s.DeleteImage(ctx, "post-1", "image-1")

		assert.NoError(t, err)
	})
}

func TestPostService_AddImage_CleanupOnDBFailure(t *testing.T) {
	imageRepo := new(mockImageRepository)
	storage := new(mockStorage)
	s := newTestPostService(imageRepo, storage)

	ctx := context.Background()

	storage.On("UploadImage", mock.Anything, "post-1", "a.jpg", mock.Anything, int64(100)).
		Return("posts/post-1/2026/08/a.jpg", "http://minio/images/a.jpg", nil)
	imageRepo.On("Create", mock.Anything, mock.Anything).
		Return(repository.ErrPostNotFound)
	storage.On("DeleteImage", mock.Anything, "posts/post-1/2026/08/a.jpg").Return(nil)

	_, err := s.AddImage(ctx, "post-1", "a.jpg", nil, 100)

	assert.ErrorIs(t, err, repository.ErrPostNotFound)
	// Загруженный объект не должен остаться без записи в БД
	storage.AssertCalled(t, "DeleteImage", mock.Anything, "posts/post-1/2026/08/a.jpg")
}
