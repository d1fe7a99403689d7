package app

import (
	"log"
	"socialnet/internal/config"
	"socialnet/internal/database"
	"socialnet/internal/repository"
	"socialnet/internal/service"
	"socialnet/internal/storage"
)

// App собирает все зависимости один раз на старте; глобального состояния нет,
// все передается явно.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
