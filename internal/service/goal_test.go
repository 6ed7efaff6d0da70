package service

import (
	"errors"
	"testing"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

func TestCreateGoalValidation(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "goals@example.com")

	tests := []struct {
		name    string
		input   CreateGoalInput
		wantErr error
	}{
		{
			name:    "missing fields",
			input:   CreateGoalInput{GoalType: model.GoalTypeSteps},
			wantErr: ErrGoalFieldsRequired,
		},
		{
			name:    "unknown goal type",
			input:   CreateGoalInput{GoalType: "jumping", TargetValue: 10, Unit: "jumps"},
			wantErr: ErrInvalidGoalType,
		},
		{
			name:    "negative target",
			input:   CreateGoalInput{GoalType: model.GoalTypeSteps, TargetValue: -5, Unit: "steps"},
			wantErr: ErrInvalidTargetValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Goals.Create(patient.ID, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	goal, err := env.Goals.Create(patient.ID, CreateGoalInput{
		GoalType:    model.GoalTypeSteps,
		TargetValue: 8000,
		Unit:        "steps",
		Description: "daily walk",
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if !goal.IsActive {
		t.Error("new goal should be active")
	}
	if goal.CurrentValue != 0 {
		t.Errorf("new goal CurrentValue = %v, want 0", goal.CurrentValue)
	}
}

func TestLogProgressSameDayReplaces(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "ledger@example.com")
	goal := env.createGoal(t, patient.ID, model.GoalTypeSteps, 8000, "steps")

	when := time.Now()

	first, _, err := env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
		ActualValue: floatPtr(3000),
		When:        when,
	})
	if err != nil {
		t.Fatalf("first LogProgress() failed: %v", err)
	}

	// Same calendar day, different time of day: the row is replaced,
	// not duplicated, and the value does not accumulate.
	second, _, err := env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
		ActualValue: floatPtr(5000),
		When:        when.Add(2 * time.Hour),
		Notes:       "evening update",
	})
	if err != nil {
		t.Fatalf("second LogProgress() failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("same-day log got new id %s, want surviving id %s", second.ID, first.ID)
	}

	_, logs, err := env.Goals.Logs(patient.ID, goal.ID, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Logs() failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs for the day, want 1", len(logs))
	}
	if logs[0].ActualValue != 5000 {
		t.Errorf("ActualValue = %v, want 5000 (latest wins)", logs[0].ActualValue)
	}
	if logs[0].Notes != "evening update" {
		t.Errorf("Notes = %q, want replacement notes", logs[0].Notes)
	}
}

func TestLogProgressRefreshesGoalCache(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "cache@example.com")
	goal := env.createGoal(t, patient.ID, model.GoalTypeWater, 2.5, "liters")

	_, updated, err := env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
		ActualValue: floatPtr(1.5),
	})
	if err != nil {
		t.Fatalf("LogProgress() failed: %v", err)
	}
	if updated.CurrentValue != 1.5 {
		t.Errorf("returned goal CurrentValue = %v, want 1.5", updated.CurrentValue)
	}

	// The cache must be visible on an independent read.
	stored, err := env.Goals.ByID(patient.ID, goal.ID)
	if err != nil {
		t.Fatalf("ByID() failed: %v", err)
	}
	if stored.CurrentValue != 1.5 {
		t.Errorf("stored goal CurrentValue = %v, want 1.5", stored.CurrentValue)
	}
}

func TestLogProgressValidation(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "logvalid@example.com")
	goal := env.createGoal(t, patient.ID, model.GoalTypeSleep, 480, "minutes")

	_, _, err := env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{})
	if !errors.Is(err, ErrActualValueRequired) {
		t.Errorf("missing actual value: error = %v, want %v", err, ErrActualValueRequired)
	}

	_, _, err = env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
		ActualValue:  floatPtr(400),
		SleepQuality: strPtr("amazing"),
	})
	if !errors.Is(err, ErrInvalidSleepQuality) {
		t.Errorf("bad sleep quality: error = %v, want %v", err, ErrInvalidSleepQuality)
	}

	// Nothing may have been written by the rejected attempts.
	_, logs, err := env.Goals.Logs(patient.ID, goal.ID, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Logs() failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("got %d logs after rejected writes, want 0", len(logs))
	}
}

func TestLogProgressUnknownGoal(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "nogoal@example.com")

	_, _, err := env.Goals.LogProgress(patient.ID, "missing-goal", LogProgressInput{
		ActualValue: floatPtr(10),
	})
	if !errors.Is(err, repository.ErrGoalNotFound) {
		t.Errorf("LogProgress() error = %v, want %v", err, repository.ErrGoalNotFound)
	}
}

func TestGoalOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createPatient(t, "alice@example.com")
	bob := env.createPatient(t, "bob@example.com")
	goal := env.createGoal(t, alice.ID, model.GoalTypeSteps, 8000, "steps")

	_, err := env.Goals.ByID(bob.ID, goal.ID)
	if !errors.Is(err, repository.ErrGoalNotFound) {
		t.Errorf("cross-user ByID() error = %v, want %v", err, repository.ErrGoalNotFound)
	}

	_, _, err = env.Goals.LogProgress(bob.ID, goal.ID, LogProgressInput{ActualValue: floatPtr(1)})
	if !errors.Is(err, repository.ErrGoalNotFound) {
		t.Errorf("cross-user LogProgress() error = %v, want %v", err, repository.ErrGoalNotFound)
	}
}

func TestUpdateGoalPartial(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "update@example.com")
	goal := env.createGoal(t, patient.ID, model.GoalTypeSteps, 8000, "steps")

	updated, err := env.Goals.Update(patient.ID, goal.ID, UpdateGoalInput{
		TargetValue: floatPtr(10000),
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.TargetValue != 10000 {
		t.Errorf("TargetValue = %v, want 10000", updated.TargetValue)
	}
	if updated.Unit != "steps" {
		t.Errorf("Unit = %q, want untouched %q", updated.Unit, "steps")
	}

	deactivated, err := env.Goals.Update(patient.ID, goal.ID, UpdateGoalInput{
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if deactivated.IsActive {
		t.Error("goal should be inactive after update")
	}

	_, err = env.Goals.Update(patient.ID, goal.ID, UpdateGoalInput{
		TargetValue: floatPtr(-1),
	})
	if !errors.Is(err, ErrInvalidTargetValue) {
		t.Errorf("negative target: error = %v, want %v", err, ErrInvalidTargetValue)
	}
}

func TestDeleteGoalRemovesLogs(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "delete@example.com")
	goal := env.createGoal(t, patient.ID, model.GoalTypeSteps, 8000, "steps")

	_, _, err := env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
		ActualValue: floatPtr(4000),
	})
	if err != nil {
		t.Fatalf("LogProgress() failed: %v", err)
	}

	err = env.Goals.Delete(patient.ID, goal.ID)
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	_, err = env.Goals.ByID(patient.ID, goal.ID)
	if !errors.Is(err, repository.ErrGoalNotFound) {
		t.Errorf("deleted goal ByID() error = %v, want %v", err, repository.ErrGoalNotFound)
	}
}

func TestLogsDateRange(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "range@example.com")
	goal := env.createGoal(t, patient.ID, model.GoalTypeSteps, 8000, "steps")

	now := time.Now()
	for i := 0; i < 10; i++ {
		_, _, err := env.Goals.LogProgress(patient.ID, goal.ID, LogProgressInput{
			ActualValue: floatPtr(float64(1000 * (i + 1))),
			When:        now.AddDate(0, 0, -i),
		})
		if err != nil {
			t.Fatalf("LogProgress() day -%d failed: %v", i, err)
		}
	}

	_, logs, err := env.Goals.Logs(patient.ID, goal.ID, now.AddDate(0, 0, -6), now)
	if err != nil {
		t.Fatalf("Logs() failed: %v", err)
	}
	if len(logs) != 7 {
		t.Fatalf("got %d logs in 7-day range, want 7", len(logs))
	}

	// Newest first.
	for i := 1; i < len(logs); i++ {
		if logs[i-1].Date < logs[i].Date {
			t.Errorf("logs out of order: %s before %s", logs[i-1].Date, logs[i].Date)
		}
	}
}
