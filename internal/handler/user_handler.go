package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"socialnet/internal/repository"
)

type UserResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProfileResponse struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка при получении пользователя", http.StatusInternalServerError)
		}
		return
	}

	response := UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	profile, err := h.SocialService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка при получении профиля", http.StatusInternalServerError)
		}
		return
	}

	response := ProfileResponse{
		UserID:    profile.User.UserID,
		Username:  profile.User.Username,
		Followers: profile.Followers,
		Following: profile.Following,
	}

	WriteSuccess(w, response, http.StatusOK)
}
