package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Stats - количество строк по каждой сущности, отдается в /api/stats.
type Stats struct {
	Users    int `json:"users" db:"users"`
	Posts    int `json:"posts" db:"posts"`
	Comments int `json:"comments" db:"comments"`
	Likes    int `json:"likes" db:"likes"`
	Follows  int `json:"follows" db:"follows"`
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats

	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM posts) AS posts,
			(SELECT COUNT(*) FROM comments) AS comments,
			(SELECT COUNT(*) FROM likes) AS likes,
			(SELECT COUNT(*) FROM follows) AS follows
	`

	err := r.db.GetContext(ctx, &stats, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчете статистики: %w", err)
	}

	return &stats, nil
}
