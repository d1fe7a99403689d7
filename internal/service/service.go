package service

import (
	"socialnet/internal/config"
	"socialnet/internal/repository"
	"socialnet/internal/storage"
)

type Service struct {
	Auth   AuthService
	Post   PostService
	Social SocialService
	Stats  StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:   NewAuthService(rep.User, cfg),
		Post:   NewPostService(rep.Post, rep.Comment, rep.Image, storage, cfg),
		Social: NewSocialService(rep.Social, rep.User),
		Stats:  NewStatsService(rep.Stats),
	}
}
