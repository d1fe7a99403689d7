package main

import (
	"fmt"
	"log"
	"net/http"
	"socialnet/cmd/app"
	"socialnet/internal/config"
	handlers "socialnet/internal/handler"
	"socialnet/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg, db)

	router := mux.NewRouter()

	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	// Публичные маршруты
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/images", handler.GetImages).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/stats", handler.StatsHandler).Methods(http.MethodGet)

	// Защищенные маршруты за явным шлюзом аутентификации
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware(services.Auth))
	protected.HandleFunc("/me", handler.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	protected.HandleFunc("/posts/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	protected.HandleFunc("/posts/{id}/like", handler.ToggleLike).Methods(http.MethodPost)
	protected.HandleFunc("/posts/{id}/images", handler.AddImage).Methods(http.MethodPost)
	protected.HandleFunc("/posts/{id}/images/{imageId}", handler.DeleteImage).Methods(http.MethodDelete)
	protected.HandleFunc("/follow/{userId}", handler.Follow).Methods(http.MethodPost)
	protected.HandleFunc("/unfollow/{userId}", handler.Unfollow).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
