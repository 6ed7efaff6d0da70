package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vitaltrack/vitaltrack/internal/repository"
	"github.com/vitaltrack/vitaltrack/internal/service"
)

// envelope is the JSON response shape shared by every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(envelope{
		Success: status < http.StatusBadRequest,
		Message: message,
		Data:    data,
	})
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	respond(w, status, "", data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, message, nil)
}

var notFoundErrors = []error{
	repository.ErrUserNotFound,
	repository.ErrGoalNotFound,
	repository.ErrAssignmentNotFound,
	repository.ErrReminderNotFound,
	repository.ErrHealthTipNotFound,
	service.ErrPatientNotFound,
	service.ErrNotAPatient,
}

var invalidInputErrors = []error{
	service.ErrGoalFieldsRequired,
	service.ErrInvalidGoalType,
	service.ErrInvalidTargetValue,
	service.ErrActualValueRequired,
	service.ErrInvalidSleepQuality,
	service.ErrPatientIDRequired,
	service.ErrReminderFieldsRequired,
	service.ErrInvalidReminderType,
	service.ErrTipFieldsRequired,
	service.ErrInvalidRole,
}

// respondServiceError maps service and repository errors onto HTTP
// statuses. Not-found and forbidden collapse into one 404 so callers
// cannot probe which patients exist.
func respondServiceError(w http.ResponseWriter, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			respondError(w, http.StatusNotFound, target.Error())
			return
		}
	}

	for _, target := range invalidInputErrors {
		if errors.Is(err, target) {
			respondError(w, http.StatusBadRequest, target.Error())
			return
		}
	}

	if errors.Is(err, service.ErrAlreadyAssigned) {
		respondError(w, http.StatusConflict, service.ErrAlreadyAssigned.Error())
		return
	}

	slog.Error("request failed", "error", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// decode reads a JSON request body into dst.
func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
