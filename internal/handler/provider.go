package handler

import (
	"net/http"

	"github.com/vitaltrack/vitaltrack/internal/ctxkeys"
	"github.com/vitaltrack/vitaltrack/internal/service"
)

// ProviderHandler serves the provider-facing roster and assignment
// endpoints.
type ProviderHandler struct {
	complianceService *service.ComplianceService
	assignmentService *service.AssignmentService
}

func NewProviderHandler(complianceService *service.ComplianceService, assignmentService *service.AssignmentService) *ProviderHandler {
	return &ProviderHandler{
		complianceService: complianceService,
		assignmentService: assignmentService,
	}
}

func (h *ProviderHandler) Patients(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	patients, err := h.complianceService.Roster(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"patients":      patients,
		"totalPatients": len(patients),
	})
}

func (h *ProviderHandler) PatientDetail(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	patientID := r.PathValue("patientId")

	detail, err := h.complianceService.PatientDetail(user.ID, patientID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, detail)
}

type assignRequest struct {
	PatientID string `json:"patientId"`
	Notes     string `json:"notes"`
}

func (h *ProviderHandler) Assign(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req assignRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assignment, err := h.assignmentService.Assign(user.ID, req.PatientID, req.Notes)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "Patient assigned successfully", map[string]any{"assignment": assignment})
}

func (h *ProviderHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	patientID := r.PathValue("patientId")

	err := h.assignmentService.Unassign(user.ID, patientID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Patient unassigned successfully", nil)
}
