package service

import (
	"errors"
	"testing"

	"github.com/vitaltrack/vitaltrack/internal/repository"
)

func TestAssignValidation(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "assign-doc@example.com")
	otherProvider := env.createProvider(t, "assign-doc2@example.com")

	_, err := env.Assignments.Assign(provider.ID, "", "")
	if !errors.Is(err, ErrPatientIDRequired) {
		t.Errorf("empty patient id: error = %v, want %v", err, ErrPatientIDRequired)
	}

	_, err = env.Assignments.Assign(provider.ID, "no-such-user", "")
	if !errors.Is(err, ErrNotAPatient) {
		t.Errorf("unknown patient: error = %v, want %v", err, ErrNotAPatient)
	}

	// Providers cannot be assigned as patients.
	_, err = env.Assignments.Assign(provider.ID, otherProvider.ID, "")
	if !errors.Is(err, ErrNotAPatient) {
		t.Errorf("provider as patient: error = %v, want %v", err, ErrNotAPatient)
	}
}

func TestAssignDuplicateConflicts(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "dup-doc@example.com")
	patient := env.createPatient(t, "dup-patient@example.com")

	_, err := env.Assignments.Assign(provider.ID, patient.ID, "")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}

	_, err = env.Assignments.Assign(provider.ID, patient.ID, "")
	if !errors.Is(err, ErrAlreadyAssigned) {
		t.Errorf("double assign: error = %v, want %v", err, ErrAlreadyAssigned)
	}
}

func TestAssignReactivatesDeactivatedPair(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "react-doc@example.com")
	patient := env.createPatient(t, "react-patient@example.com")

	original, err := env.Assignments.Assign(provider.ID, patient.ID, "initial notes")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}

	err = env.Assignments.Unassign(provider.ID, patient.ID)
	if err != nil {
		t.Fatalf("Unassign() failed: %v", err)
	}

	// Re-assigning revives the same row; the relationship keeps one
	// identity across deactivation cycles.
	revived, err := env.Assignments.Assign(provider.ID, patient.ID, "back again")
	if err != nil {
		t.Fatalf("re-Assign() failed: %v", err)
	}
	if revived.ID != original.ID {
		t.Errorf("reactivated assignment id = %s, want original %s", revived.ID, original.ID)
	}
	if !revived.IsActive {
		t.Error("reactivated assignment should be active")
	}
	if revived.Notes != "back again" {
		t.Errorf("Notes = %q, want overwritten notes", revived.Notes)
	}
}

func TestAssignReactivationKeepsNotesWhenEmpty(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "notes-doc@example.com")
	patient := env.createPatient(t, "notes-patient@example.com")

	_, err := env.Assignments.Assign(provider.ID, patient.ID, "original notes")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
	err = env.Assignments.Unassign(provider.ID, patient.ID)
	if err != nil {
		t.Fatalf("Unassign() failed: %v", err)
	}

	revived, err := env.Assignments.Assign(provider.ID, patient.ID, "")
	if err != nil {
		t.Fatalf("re-Assign() failed: %v", err)
	}
	if revived.Notes != "original notes" {
		t.Errorf("Notes = %q, want original preserved on empty input", revived.Notes)
	}
}

func TestUnassignUnknownPair(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "un-doc@example.com")
	patient := env.createPatient(t, "un-patient@example.com")

	err := env.Assignments.Unassign(provider.ID, patient.ID)
	if !errors.Is(err, repository.ErrAssignmentNotFound) {
		t.Errorf("Unassign() error = %v, want %v", err, repository.ErrAssignmentNotFound)
	}
}
