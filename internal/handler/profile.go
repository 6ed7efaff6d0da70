package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/ctxkeys"
	"github.com/vitaltrack/vitaltrack/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	auditService   *service.AuditService
}

func NewProfileHandler(profileService *service.ProfileService, auditService *service.AuditService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		auditService:   auditService,
	}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, err := h.profileService.Profile(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"user": profile})
}

type updateProfileRequest struct {
	FirstName          *string `json:"firstName"`
	LastName           *string `json:"lastName"`
	PhoneNumber        *string `json:"phoneNumber"`
	DateOfBirth        *string `json:"dateOfBirth"`
	Allergies          *string `json:"allergies"`
	CurrentMedications *string `json:"currentMedications"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updateProfileRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.UpdateProfileInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		PhoneNumber:        req.PhoneNumber,
		Allergies:          req.Allergies,
		CurrentMedications: req.CurrentMedications,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid date of birth, expected YYYY-MM-DD")
			return
		}
		in.DateOfBirth = &dob
	}

	profile, err := h.profileService.Update(user.ID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Profile updated successfully", map[string]any{"user": profile})
}

func (h *ProfileHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err == nil {
			limit = parsed
		}
	}

	logs, err := h.auditService.Logs(user.ID, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"auditLogs": logs})
}
