package service

import (
	"errors"
	"testing"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/model"
)

func TestClassifyCompliance(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{0, model.ComplianceNeedsAttention},
		{49, model.ComplianceNeedsAttention},
		{50, model.ComplianceMissedCheckup},
		{71, model.ComplianceMissedCheckup},
		{79, model.ComplianceMissedCheckup},
		{80, model.ComplianceGoalMet},
		{100, model.ComplianceGoalMet},
	}

	for _, tt := range tests {
		got := classifyCompliance(tt.percentage)
		if got != tt.want {
			t.Errorf("classifyCompliance(%d) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestRosterWeeklyCompliance(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "doc@example.com")
	patient := env.createPatient(t, "patient@example.com")
	goal := env.createGoal(t, patient.ID, model.GoalTypeSteps, 8000, "steps")

	_, err := env.Assignments.Assign(provider.ID, patient.ID, "routine monitoring")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}

	// Logs on 5 of the trailing 7 days, two of them on the same day so
	// the distinct-day count is what matters, not the log count.
	now := time.Now()
	for _, daysAgo := range []int{0, 1, 2, 3, 4} {
		_, _, err := env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
			ActualValue: floatPtr(6000),
			When:        now.AddDate(0, 0, -daysAgo),
		})
		if err != nil {
			t.Fatalf("LogProgress() day -%d failed: %v", daysAgo, err)
		}
	}
	_, _, err = env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
		ActualValue: floatPtr(9000),
		When:        now,
	})
	if err != nil {
		t.Fatalf("duplicate-day LogProgress() failed: %v", err)
	}

	roster, err := env.Compliance.Roster(provider.ID)
	if err != nil {
		t.Fatalf("Roster() failed: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("got %d roster rows, want 1", len(roster))
	}

	row := roster[0]
	// 5 distinct days out of 7 rounds to 71.
	if row.CompliancePercentage != 71 {
		t.Errorf("CompliancePercentage = %d, want 71", row.CompliancePercentage)
	}
	if row.ComplianceStatus != model.ComplianceMissedCheckup {
		t.Errorf("ComplianceStatus = %q, want %q", row.ComplianceStatus, model.ComplianceMissedCheckup)
	}
	if row.ActiveGoals != 1 {
		t.Errorf("ActiveGoals = %d, want 1", row.ActiveGoals)
	}
	if row.LogsLastWeek != 5 {
		t.Errorf("LogsLastWeek = %d, want 5 (same-day logs collapse)", row.LogsLastWeek)
	}
	if row.PatientName != patient.FullName() {
		t.Errorf("PatientName = %q, want %q", row.PatientName, patient.FullName())
	}
}

func TestRosterFullCompliance(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "doc2@example.com")
	patient := env.createPatient(t, "diligent@example.com")
	goal := env.createGoal(t, patient.ID, model.GoalTypeWater, 2.5, "liters")

	_, err := env.Assignments.Assign(provider.ID, patient.ID, "")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}

	now := time.Now()
	for daysAgo := 0; daysAgo < 7; daysAgo++ {
		_, _, err := env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
			ActualValue: floatPtr(2.5),
			When:        now.AddDate(0, 0, -daysAgo),
		})
		if err != nil {
			t.Fatalf("LogProgress() day -%d failed: %v", daysAgo, err)
		}
	}

	roster, err := env.Compliance.Roster(provider.ID)
	if err != nil {
		t.Fatalf("Roster() failed: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("got %d roster rows, want 1", len(roster))
	}
	if roster[0].CompliancePercentage != 100 {
		t.Errorf("CompliancePercentage = %d, want 100", roster[0].CompliancePercentage)
	}
	if roster[0].ComplianceStatus != model.ComplianceGoalMet {
		t.Errorf("ComplianceStatus = %q, want %q", roster[0].ComplianceStatus, model.ComplianceGoalMet)
	}
}

func TestRosterZeroGoalsPinsToZero(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "doc3@example.com")
	patient := env.createPatient(t, "nogoals@example.com")

	_, err := env.Assignments.Assign(provider.ID, patient.ID, "")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}

	roster, err := env.Compliance.Roster(provider.ID)
	if err != nil {
		t.Fatalf("Roster() failed: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("got %d roster rows, want 1", len(roster))
	}
	if roster[0].CompliancePercentage != 0 {
		t.Errorf("CompliancePercentage = %d, want 0 for zero active goals", roster[0].CompliancePercentage)
	}
	if roster[0].ComplianceStatus != model.ComplianceNeedsAttention {
		t.Errorf("ComplianceStatus = %q, want %q", roster[0].ComplianceStatus, model.ComplianceNeedsAttention)
	}
}

func TestPatientDetailRequiresActiveAssignment(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "doc4@example.com")
	other := env.createProvider(t, "doc5@example.com")
	patient := env.createPatient(t, "private@example.com")

	_, err := env.Assignments.Assign(provider.ID, patient.ID, "")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}

	// A provider without an assignment learns nothing, not even whether
	// the patient exists.
	_, err = env.Compliance.PatientDetail(other.ID, patient.ID)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("unassigned provider: error = %v, want %v", err, ErrPatientNotFound)
	}

	_, err = env.Compliance.PatientDetail(provider.ID, "no-such-patient")
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("missing patient: error = %v, want %v", err, ErrPatientNotFound)
	}

	// A deactivated assignment behaves exactly like a missing one.
	err = env.Assignments.Unassign(provider.ID, patient.ID)
	if err != nil {
		t.Fatalf("Unassign() failed: %v", err)
	}
	_, err = env.Compliance.PatientDetail(provider.ID, patient.ID)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("inactive assignment: error = %v, want %v", err, ErrPatientNotFound)
	}
}

func TestPatientDetailBundle(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "doc6@example.com")
	patient := env.createPatient(t, "bundle@example.com")
	goal := env.createGoal(t, patient.ID, model.GoalTypeSteps, 8000, "steps")

	_, err := env.Assignments.Assign(provider.ID, patient.ID, "")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}

	_, _, err = env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
		ActualValue: floatPtr(4000),
	})
	if err != nil {
		t.Fatalf("LogProgress() failed: %v", err)
	}

	_, err = env.Reminders.Create(patient, CreateReminderInput{
		Title:   "Annual physical",
		DueDate: time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("reminder Create() failed: %v", err)
	}

	detail, err := env.Compliance.PatientDetail(provider.ID, patient.ID)
	if err != nil {
		t.Fatalf("PatientDetail() failed: %v", err)
	}

	if detail.Patient.PasswordHash != "" {
		t.Error("patient detail leaked the password hash")
	}
	if len(detail.Goals) != 1 {
		t.Errorf("got %d goals, want 1", len(detail.Goals))
	}
	if len(detail.Logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(detail.Logs))
	}
	if detail.Logs[0].GoalType != model.GoalTypeSteps {
		t.Errorf("log GoalType = %q, want joined goal metadata", detail.Logs[0].GoalType)
	}
	if detail.Logs[0].GoalTargetValue != 8000 {
		t.Errorf("log GoalTargetValue = %v, want 8000", detail.Logs[0].GoalTargetValue)
	}
	if len(detail.Reminders) != 1 {
		t.Errorf("got %d reminders, want 1", len(detail.Reminders))
	}
}

func TestRosterOnlyActiveAssignments(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "doc7@example.com")
	kept := env.createPatient(t, "kept@example.com")
	dropped := env.createPatient(t, "dropped@example.com")

	_, err := env.Assignments.Assign(provider.ID, kept.ID, "")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
	_, err = env.Assignments.Assign(provider.ID, dropped.ID, "")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
	err = env.Assignments.Unassign(provider.ID, dropped.ID)
	if err != nil {
		t.Fatalf("Unassign() failed: %v", err)
	}

	roster, err := env.Compliance.Roster(provider.ID)
	if err != nil {
		t.Fatalf("Roster() failed: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("got %d roster rows, want 1", len(roster))
	}
	if roster[0].PatientID != kept.ID {
		t.Errorf("roster patient = %s, want %s", roster[0].PatientID, kept.ID)
	}
}
