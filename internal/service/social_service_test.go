package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"socialnet/internal/repository"
)

type mockSocialRepository struct {
	mock.Mock
}

func (m *mockSocialRepository) ToggleLike(ctx context.Context, userID, postID string) (repository.LikeResult, error) {
	args := m.Called(ctx, userID, postID)
	return args.Get(0).(repository.LikeResult), args.Error(1)
}

func (m *mockSocialRepository) Follow(ctx context.Context, followerID, followedID string) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}

func (m *mockSocialRepository) Unfollow(ctx context.Context, followerID, followedID string) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}

func (m *mockSocialRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockSocialRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func TestSocialService_SelfFollow(t *testing.T) {
	socialRepo := new(mockSocialRepository)
	s := NewSocialService(socialRepo, nil)

	err := s.Follow(context.Background(), "user-1", "user-1")

	assert.ErrorIs(t, err, repository.ErrSelfFollow)
	// До хранилища запрос не доходит
	socialRepo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
}

func TestSocialService_FollowDelegates(t *testing.T) {
	socialRepo := new(mockSocialRepository)
	s := NewSocialService(socialRepo, nil)

	socialRepo.On("Follow", mock.Anything, "user-1", "user-2").Return(nil)

	err := s.Follow(context.Background(), "user-1", "user-2")

	assert.NoError(t, err)
	socialRepo.AssertExpectations(t)
}
