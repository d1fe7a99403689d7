package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"socialnet/internal/config"
	"socialnet/internal/models"
	"socialnet/internal/repository"
	"socialnet/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID, content string) (*models.Post, error)
	GetFeed(ctx context.Context) ([]models.PostFeedItem, error)
	AddComment(ctx context.Context, postID, authorID, content string) (*models.Comment, error)
	GetComments(ctx context.Context, postID string) ([]models.CommentFeedItem, error)
	AddImage(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Image, error)
	GetImages(ctx context.Context, postID string) ([]*models.Image, error)
	DeleteImage(ctx context.Context, postID, imageID string) error
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	imageRepo   repository.ImageRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, imageRepo repository.ImageRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		imageRepo:   imageRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, authorID, content string) (*models.Post, error) {
	post := &models.Post{
		AuthorID: authorID,
		Content:  content,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetFeed(ctx context.Context) ([]models.PostFeedItem, error) {
	return p.postRepo.GetFeed(ctx)
}

func (p *postService) AddComment(ctx context.Context, postID, authorID, content string) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}

	err := p.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (p *postService) GetComments(ctx context.Context, postID string) ([]models.CommentFeedItem, error) {
	return p.commentRepo.GetByPostID(ctx, postID)
}

// AddImage загружает файл в объектное хранилище и записывает метаданные в БД.
// При неудачной записи в БД загруженный объект удаляется.
func (p *postService) AddImage(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	image := &models.Image{
		PostID:     postID,
		ObjectName: objectName,
		ImageURL:   imageURL,
	}

	err = p.imageRepo.Create(ctx, image)
	if err != nil {
		if cleanupErr := p.storage.DeleteImage(ctx, objectName); cleanupErr != nil {
			log.Printf("Не удалось удалить объект %s из MinIO после ошибки БД: %v", objectName, cleanupErr)
		}
		return nil, err
	}

	return image, nil
}

func (p *postService) GetImages(ctx context.Context, postID string) ([]*models.Image, error) {
	return p.imageRepo.GetByPostID(ctx, postID)
}

// DeleteImage удаляет запись из БД и объект из хранилища. Ошибка удаления
// объекта не отменяет операцию: запись уже удалена, объект остается сиротой
// и попадает в лог.
func (p *postService) DeleteImage(ctx context.Context, postID, imageID string) error {
	image, err := p.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	// Изображение должно принадлежать посту из URL
	if image.PostID != postID {
		return repository.ErrImageNotFound
	}

	err = p.imageRepo.Delete(ctx, imageID)
	if err != nil {
		return err
	}

	if err := p.storage.DeleteImage(ctx, image.ObjectName); err != nil {
		log.Printf("Не удалось удалить объект %s из MinIO: %v", image.ObjectName, err)
	}

	return nil
}
