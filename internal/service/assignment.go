package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

var (
	ErrPatientIDRequired = errors.New("patient id is required")
	ErrNotAPatient       = errors.New("patient not found")
	ErrAlreadyAssigned   = errors.New("patient already assigned")
)

// AssignmentService owns the provider↔patient relationship.
type AssignmentService struct {
	repo     repository.AssignmentRepository
	userRepo repository.UserRepository
	audit    *AuditService
}

func NewAssignmentService(repo repository.AssignmentRepository, userRepo repository.UserRepository, audit *AuditService) *AssignmentService {
	return &AssignmentService{
		repo:     repo,
		userRepo: userRepo,
		audit:    audit,
	}
}

// Assign links a patient to the provider. Re-assigning a deactivated
// pair reactivates the existing row instead of creating a duplicate,
// so the relationship keeps one identity for its whole history.
func (s *AssignmentService) Assign(providerID, patientID, notes string) (*model.Assignment, error) {
	if patientID == "" {
		return nil, ErrPatientIDRequired
	}

	patient, err := s.userRepo.ByID(patientID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotAPatient
		}
		return nil, err
	}
	if patient.Role != model.RolePatient {
		return nil, ErrNotAPatient
	}

	existing, err := s.repo.ByPair(providerID, patientID)
	if err != nil && !errors.Is(err, repository.ErrAssignmentNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.IsActive {
			return nil, ErrAlreadyAssigned
		}

		existing.IsActive = true
		if notes != "" {
			existing.Notes = notes
		}
		err = s.repo.Update(existing)
		if err != nil {
			return nil, fmt.Errorf("failed to reactivate assignment: %w", err)
		}
		return existing, nil
	}

	now := time.Now()
	assignment := &model.Assignment{
		ID:           uuid.New().String(),
		ProviderID:   providerID,
		PatientID:    patientID,
		AssignedDate: now,
		IsActive:     true,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.Create(assignment)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.audit.Record(providerID, model.AuditPatientAssigned, "ProviderPatientAssignment", assignment.ID,
		map[string]any{"patientId": patientID})

	return assignment, nil
}

// Unassign soft-deactivates the relationship. The row is kept so the
// care history stays auditable.
func (s *AssignmentService) Unassign(providerID, patientID string) error {
	assignment, err := s.repo.ByPair(providerID, patientID)
	if err != nil {
		return err
	}

	assignment.IsActive = false
	return s.repo.Update(assignment)
}
