package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"socialnet/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create полагается на внешний ключ comments.post_id: вставка в несуществующий
// пост атомарно отклоняется базой вместо отдельной проверки существования.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (comment_id, post_id, author_id, content, created_at)
		VALUES (:comment_id, :post_id, :author_id, :content, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return ErrPostNotFound
		}
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

// GetByPostID возвращает пустой срез и для поста без комментариев,
// и для несуществующего поста.
func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]models.CommentFeedItem, error) {
	query := `
		SELECT c.comment_id, c.content, u.username AS author, c.created_at
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at
	`

	comments := []models.CommentFeedItem{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}
