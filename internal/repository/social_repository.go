package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type socialRepository struct {
	db *sqlx.DB
}

func NewSocialRepository(db *sqlx.DB) SocialRepository {
	return &socialRepository{db: db}
}

// ToggleLike - строгий переключатель: существующий лайк удаляется, отсутствующий
// создается. Составной первичный ключ likes(user_id, post_id) не допускает
// второй строки для пары даже при конкурентных запросах.
func (r *socialRepository) ToggleLike(ctx context.Context, userID, postID string) (LikeResult, error) {
	deleteQuery := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	result, err := r.db.ExecContext(ctx, deleteQuery, userID, postID)
	if err != nil {
		return "", fmt.Errorf("ошибка при снятии лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected > 0 {
		return Unliked, nil
	}

	insertQuery := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	result, err = r.db.ExecContext(ctx, insertQuery, userID, postID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return "", ErrPostNotFound
		}
		return "", fmt.Errorf("ошибка при установке лайка: %w", err)
	}

	// Если вставка ничего не затронула, лайк успел поставить параллельный
	// запрос; итоговое состояние то же самое.
	return Liked, nil
}

func (r *socialRepository) Follow(ctx context.Context, followerID, followedID string) error {
	query := `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followed_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return ErrUserNotFound
		}
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке вставленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyFollowing
	}

	return nil
}

func (r *socialRepository) Unfollow(ctx context.Context, followerID, followedID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`

	result, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFollowing
	}

	return nil
}

func (r *socialRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE followed_id = $1`

	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете подписчиков: %w", err)
	}

	return count, nil
}

func (r *socialRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1`

	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете подписок: %w", err)
	}

	return count, nil
}
