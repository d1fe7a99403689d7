package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"socialnet/internal/repository"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	_, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			WriteError(w, "Имя пользователя уже занято", http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при регистрации", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пользователь зарегистрирован!"}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	accessToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// Для неизвестного имени и неверного пароля ответ одинаковый
		if errors.Is(err, repository.ErrInvalidCredentials) {
			WriteError(w, "Неверное имя пользователя или пароль", http.StatusUnauthorized)
		} else {
			WriteError(w, "Ошибка при входе", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, LoginResponse{AccessToken: accessToken}, http.StatusOK)
}
