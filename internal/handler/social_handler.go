package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"socialnet/internal/repository"
)

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	result, err := h.SocialService.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка при переключении лайка", http.StatusInternalServerError)
		}
		return
	}

	message := "Лайк поставлен!"
	if result == repository.Unliked {
		message = "Лайк снят!"
	}

	WriteSuccess(w, MessageResponse{Message: message}, http.StatusOK)
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	followedID := mux.Vars(r)["userId"]

	err := h.SocialService.Follow(r.Context(), followerID, followedID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSelfFollow):
			WriteError(w, "Нельзя подписаться на самого себя", http.StatusBadRequest)
		case errors.Is(err, repository.ErrAlreadyFollowing):
			WriteError(w, "Вы уже подписаны на этого пользователя", http.StatusBadRequest)
		case errors.Is(err, repository.ErrUserNotFound):
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		default:
			WriteError(w, "Ошибка при создании подписки", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Вы подписались на пользователя!"}, http.StatusCreated)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	followedID := mux.Vars(r)["userId"]

	err := h.SocialService.Unfollow(r.Context(), followerID, followedID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFollowing) {
			WriteError(w, "Вы не подписаны на этого пользователя", http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при удалении подписки", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Вы отписались от пользователя!"}, http.StatusOK)
}
