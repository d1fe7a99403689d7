package service

import (
	"context"

	"socialnet/internal/models"
	"socialnet/internal/repository"
)

// Profile - публичный профиль пользователя со счетчиками подписок.
type Profile struct {
	User      *models.User
	Followers int
	Following int
}

type SocialService interface {
	ToggleLike(ctx context.Context, userID, postID string) (repository.LikeResult, error)
	Follow(ctx context.Context, followerID, followedID string) error
	Unfollow(ctx context.Context, followerID, followedID string) error
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

type socialService struct {
	socialRepo repository.SocialRepository
	userRepo   repository.UserRepository
}

func NewSocialService(socialRepo repository.SocialRepository, userRepo repository.UserRepository) SocialService {
	return &socialService{
		socialRepo: socialRepo,
		userRepo:   userRepo,
	}
}

func (s *socialService) ToggleLike(ctx context.Context, userID, postID string) (repository.LikeResult, error) {
	return s.socialRepo.ToggleLike(ctx, userID, postID)
}

func (s *socialService) Follow(ctx context.Context, followerID, followedID string) error {
	// Подписка на самого себя запрещена явно, а не оставлена на усмотрение БД
	if followerID == followedID {
		return repository.ErrSelfFollow
	}

	return s.socialRepo.Follow(ctx, followerID, followedID)
}

func (s *socialService) Unfollow(ctx context.Context, followerID, followedID string) error {
	return s.socialRepo.Unfollow(ctx, followerID, followedID)
}

func (s *socialService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.socialRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	following, err := s.socialRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:      user,
		Followers: followers,
		Following: following,
	}, nil
}
