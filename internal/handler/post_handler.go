package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"socialnet/internal/repository"
)

type CreatePostRequest struct {
	Content string `json:"content"`
}

type PostCreateResponse struct {
	Message string `json:"message"`
	PostID  string `json:"postId"`
}

type CommentCreateResponse struct {
	Message   string `json:"message"`
	CommentID string `json:"commentId"`
}

type ImageResponse struct {
	ImageID   string `json:"imageId"`
	PostID    string `json:"postId"`
	ImageURL  string `json:"imageUrl"`
	FileName  string `json:"fileName"`
	FileSize  int64  `json:"fileSize"`
	MimeType  string `json:"mimeType"`
	CreatedAt string `json:"createdAt"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// Содержимое поста не валидируется, пустой пост допустим
	post, err := h.PostService.CreatePost(r.Context(), authorID, req.Content)
	if err != nil {
		WriteError(w, "Ошибка при создании поста", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, PostCreateResponse{Message: "Пост создан!", PostID: post.PostID}, http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetFeed(r.Context())
	if err != nil {
		WriteError(w, "Ошибка при получении постов", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	authorID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	comment, err := h.PostService.AddComment(r.Context(), postID, authorID, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка при добавлении комментария", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, CommentCreateResponse{Message: "Комментарий добавлен!", CommentID: comment.CommentID}, http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	comments, err := h.PostService.GetComments(r.Context(), postID)
	if err != nil {
		WriteError(w, "Ошибка при получении комментариев", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) AddImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка при получении поста", http.StatusInternalServerError)
		}
		return
	}

	// Добавлять изображения может только автор поста
	if post.AuthorID != userID {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	file, handler, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	image, err := h.PostService.AddImage(r.Context(), postID, handler.Filename, file, handler.Size)
	if err != nil {
		WriteError(w, "Ошибка загрузки изображения", http.StatusInternalServerError)
		return
	}

	response := ImageResponse{
		ImageID:   image.ImageID,
		PostID:    image.PostID,
		ImageURL:  image.ImageURL,
		FileName:  handler.Filename,
		FileSize:  handler.Size,
		MimeType:  contentType,
		CreatedAt: image.CreatedAt.Format(time.RFC3339),
	}

	WriteSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) GetImages(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	images, err := h.PostService.GetImages(r.Context(), postID)
	if err != nil {
		WriteError(w, "Ошибка при получении изображений", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, images, http.StatusOK)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	postID := vars["id"]
	imageID := vars["imageId"]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка при получении поста", http.StatusInternalServerError)
		}
		return
	}

	// Удалять изображения может только автор поста
	if post.AuthorID != userID {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	err = h.PostService.DeleteImage(r.Context(), postID, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			WriteError(w, "Изображение не найдено", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка при удалении изображения", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Изображение удалено!"}, http.StatusOK)
}
