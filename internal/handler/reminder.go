package handler

import (
	"net/http"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/ctxkeys"
	"github.com/vitaltrack/vitaltrack/internal/service"
)

type ReminderHandler struct {
	reminderService *service.ReminderService
}

func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
	}
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var isCompleted *bool
	if v := r.URL.Query().Get("isCompleted"); v != "" {
		completed := v == "true"
		isCompleted = &completed
	}
	upcoming := r.URL.Query().Get("upcoming") == "true"

	reminders, err := h.reminderService.Reminders(user.ID, isCompleted, upcoming)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"reminders": reminders})
}

type createReminderRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DueDate      string `json:"dueDate"`
	ReminderType string `json:"reminderType"`
	UserID       string `json:"userId"`
}

func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createReminderRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.CreateReminderInput{
		Title:        req.Title,
		Description:  req.Description,
		ReminderType: req.ReminderType,
		ForUserID:    req.UserID,
	}
	if req.DueDate != "" {
		due, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			due, err = time.Parse("2006-01-02", req.DueDate)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid due date")
				return
			}
		}
		in.DueDate = due
	}

	reminder, err := h.reminderService.Create(user, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "Reminder created successfully", map[string]any{"reminder": reminder})
}

type updateReminderRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	DueDate      *string `json:"dueDate"`
	ReminderType *string `json:"reminderType"`
}

func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	reminderID := r.PathValue("id")

	var req updateReminderRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.UpdateReminderInput{
		Title:        req.Title,
		Description:  req.Description,
		ReminderType: req.ReminderType,
	}
	if req.DueDate != nil {
		due, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			due, err = time.Parse("2006-01-02", *req.DueDate)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid due date")
				return
			}
		}
		in.DueDate = &due
	}

	reminder, err := h.reminderService.Update(user.ID, reminderID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Reminder updated successfully", map[string]any{"reminder": reminder})
}

func (h *ReminderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	reminderID := r.PathValue("id")

	reminder, err := h.reminderService.Complete(user.ID, reminderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Reminder marked as completed", map[string]any{"reminder": reminder})
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	reminderID := r.PathValue("id")

	err := h.reminderService.Delete(user.ID, reminderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Reminder deleted successfully", nil)
}
