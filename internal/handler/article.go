package handler

import (
	"net/http"

	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/service"
)

// ArticleHandler serves the public health-information pages.
type ArticleHandler struct {
	articleService *service.ArticleService
}

func NewArticleHandler(articleService *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.Articles()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"articles": articles})
}

func (h *ArticleHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if !model.ValidArticleCategory(category) {
		respondError(w, http.StatusBadRequest, "invalid category")
		return
	}

	articles, err := h.articleService.ByCategory(category)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"articles": articles})
}

func (h *ArticleHandler) Show(w http.ResponseWriter, r *http.Request) {
	article, err := h.articleService.Article(r.PathValue("slug"))
	if err != nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}

	respondData(w, http.StatusOK, map[string]any{"article": article})
}
