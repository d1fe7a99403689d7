package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Like struct {
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Follow struct {
	FollowerID string    `json:"followerId" db:"follower_id"`
	FollowedID string    `json:"followedId" db:"followed_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Image struct {
	ImageID    string    `json:"imageId" db:"image_id"`
	PostID     string    `json:"postId" db:"post_id"`
	ObjectName string    `json:"-" db:"object_name"`
	ImageURL   string    `json:"imageUrl" db:"image_url"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// PostFeedItem - пост с именем автора для публичной ленты
type PostFeedItem struct {
	PostID    string    `json:"id" db:"post_id"`
	Content   string    `json:"content" db:"content"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CommentFeedItem - комментарий с именем автора
type CommentFeedItem struct {
	CommentID string    `json:"id" db:"comment_id"`
	Content   string    `json:"content" db:"content"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
