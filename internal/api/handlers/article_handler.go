package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/megahand-az/megahand-be/internal/httpx"
	"github.com/megahand-az/megahand-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ArticleHandler handles HTTP requests for articles.
type ArticleHandler struct {
	service services.ArticleServiceProvider
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(service services.ArticleServiceProvider) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// CreateArticlePayload defines the structure for article creation requests.
type CreateArticlePayload struct {
	Title    string  `json:"title" validate:"required"`
	Summary  string  `json:"summary" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"imageUrl"`
	Status   string  `json:"status" validate:"omitempty,oneof=published draft"`
}

// UpdateArticlePayload defines a partial update; absent fields are untouched.
type UpdateArticlePayload struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Summary  *string `json:"summary" validate:"omitempty,min=1"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	ImageURL *string `json:"imageUrl"`
	Status   *string `json:"status" validate:"omitempty,oneof=published draft"`
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// GetAll handles the request to list all articles, newest first.
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.GetAllArticles()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve articles")
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	httpx.Respond(w, http.StatusOK, articles)
}

// Get handles the request to get a single article by its ID.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	article, err := h.service.GetArticleByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Error().Err(err).Int64("article_id", id).Msg("Failed to retrieve article")
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch article")
		return
	}
	httpx.Respond(w, http.StatusOK, article)
}

// Create handles the request to create a new article.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateArticlePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := httpx.Validate(payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	article, err := h.service.CreateArticle(services.ArticleInput{
		Title:    payload.Title,
		Summary:  payload.Summary,
		Content:  payload.Content,
		ImageURL: payload.ImageURL,
		Status:   payload.Status,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create article")
		httpx.Error(w, http.StatusInternalServerError, "Failed to create article")
		return
	}
	httpx.Respond(w, http.StatusCreated, article)
}

// Update handles a partial update of an existing article.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	var payload UpdateArticlePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := httpx.Validate(payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	article, err := h.service.UpdateArticle(id, services.ArticleUpdate{
		Title:    payload.Title,
		Summary:  payload.Summary,
		Content:  payload.Content,
		ImageURL: payload.ImageURL,
		Status:   payload.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Error().Err(err).Int64("article_id", id).Msg("Failed to update article")
		httpx.Error(w, http.StatusInternalServerError, "Failed to update article")
		return
	}
	httpx.Respond(w, http.StatusOK, article)
}

// Delete handles the request to delete an article.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	if err := h.service.DeleteArticle(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Error().Err(err).Int64("article_id", id).Msg("Failed to delete article")
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]string{"message": "Article deleted successfully"})
}
