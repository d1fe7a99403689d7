package repository

import (
	"context"
	"socialnet/internal/models"

	"github.com/jmoiron/sqlx"
)

// LikeResult - результат переключения лайка.
type LikeResult string

const (
	Liked   LikeResult = "liked"
	Unliked LikeResult = "unliked"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetFeed(ctx context.Context) ([]models.PostFeedItem, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID string) ([]models.CommentFeedItem, error)
}

type SocialRepository interface {
	ToggleLike(ctx context.Context, userID, postID string) (LikeResult, error)
	Follow(ctx context.Context, followerID, followedID string) error
	Unfollow(ctx context.Context, followerID, followedID string) error
	CountFollowers(ctx context.Context, userID string) (int, error)
	CountFollowing(ctx context.Context, userID string) (int, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, imageID string) (*models.Image, error)
	GetByPostID(ctx context.Context, postID string) ([]*models.Image, error)
	Delete(ctx context.Context, imageID string) error
}

type StatsRepository interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Social  SocialRepository
	Image   ImageRepository
	Stats   StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Social:  NewSocialRepository(db),
		Image:   NewImageRepository(db),
		Stats:   NewStatsRepository(db),
	}
}
