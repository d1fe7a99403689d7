package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"socialnet/internal/config"
	"socialnet/internal/models"
	"socialnet/internal/repository"
)

// Ошибки проверки токена. Истекший и недействительный токен различаются,
// но наружу оба уходят как 401.
var (
	ErrTokenExpired = errors.New("токен истек")
	ErrTokenInvalid = errors.New("недействительный токен")
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GenerateAccessToken(user *models.User) (string, error)
	VerifyToken(tokenString string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	existingUser, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil && existingUser != nil {
		return nil, repository.ErrDuplicateUsername
	}

	// Уникальный индекс в CreateUser закрывает гонку между проверкой и вставкой
	user, err := s.userRepo.CreateUser(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return "", err
	}

	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return accessToken, nil
}

func (s *authService) GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.UserID,
		"exp":    time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// VerifyToken проверяет подпись и срок действия и возвращает идентификатор
// пользователя из claims.
func (s *authService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", ErrTokenInvalid
	}

	return userID, nil
}
