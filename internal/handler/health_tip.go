package handler

import (
	"errors"
	"net/http"

	"github.com/vitaltrack/vitaltrack/internal/ctxkeys"
	"github.com/vitaltrack/vitaltrack/internal/service"
)

type HealthTipHandler struct {
	tipService *service.HealthTipService
}

func NewHealthTipHandler(tipService *service.HealthTipService) *HealthTipHandler {
	return &HealthTipHandler{
		tipService: tipService,
	}
}

func (h *HealthTipHandler) List(w http.ResponseWriter, r *http.Request) {
	tips, err := h.tipService.Tips(r.URL.Query().Get("category"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"tips": tips})
}

func (h *HealthTipHandler) Daily(w http.ResponseWriter, r *http.Request) {
	tip, err := h.tipService.DailyTip(r.URL.Query().Get("category"))
	if err != nil {
		if errors.Is(err, service.ErrNoTipsAvailable) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"tip": tip})
}

type createTipRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (h *HealthTipHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createTipRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tip, err := h.tipService.Create(user.ID, req.Title, req.Content, req.Category)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "Health tip created successfully", map[string]any{"tip": tip})
}

type updateTipRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	IsActive *bool   `json:"isActive"`
}

func (h *HealthTipHandler) Update(w http.ResponseWriter, r *http.Request) {
	tipID := r.PathValue("id")

	var req updateTipRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tip, err := h.tipService.Update(tipID, service.UpdateTipInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Health tip updated successfully", map[string]any{"tip": tip})
}

func (h *HealthTipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tipID := r.PathValue("id")

	err := h.tipService.Delete(tipID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Health tip deleted successfully", nil)
}
