package handlers

import (
	"github.com/go-playground/validator/v10"
	"socialnet/internal/config"
	"socialnet/internal/database"
	"socialnet/internal/repository"
	"socialnet/internal/service"
)

type Handlers struct {
	AuthService   service.AuthService
	PostService   service.PostService
	SocialService service.SocialService
	StatsService  service.StatsService
	UserRepo      repository.UserRepository
	PostRepo      repository.PostRepository
	DB            *database.DB
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config, db *database.DB) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		PostService:   service.Post,
		SocialService: service.Social,
		StatsService:  service.Stats,
		UserRepo:      repo.User,
		PostRepo:      repo.Post,
		DB:            db,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
