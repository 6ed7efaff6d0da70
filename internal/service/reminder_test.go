package service

import (
	"errors"
	"testing"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

func TestCreateReminderDefaults(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "remind@example.com")

	_, err := env.Reminders.Create(patient, CreateReminderInput{})
	if !errors.Is(err, ErrReminderFieldsRequired) {
		t.Errorf("empty input: error = %v, want %v", err, ErrReminderFieldsRequired)
	}

	_, err = env.Reminders.Create(patient, CreateReminderInput{
		Title:        "Flu shot",
		DueDate:      time.Now().AddDate(0, 1, 0),
		ReminderType: "party",
	})
	if !errors.Is(err, ErrInvalidReminderType) {
		t.Errorf("bad type: error = %v, want %v", err, ErrInvalidReminderType)
	}

	reminder, err := env.Reminders.Create(patient, CreateReminderInput{
		Title:   "Flu shot",
		DueDate: time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if reminder.ReminderType != model.ReminderTypeOther {
		t.Errorf("ReminderType = %q, want default %q", reminder.ReminderType, model.ReminderTypeOther)
	}
	if reminder.IsCompleted {
		t.Error("new reminder should not be completed")
	}
	if reminder.UserID != patient.ID || reminder.CreatedBy != patient.ID {
		t.Errorf("ownership = user %s created by %s, want both %s", reminder.UserID, reminder.CreatedBy, patient.ID)
	}
}

func TestProviderCreatesReminderForPatient(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createProvider(t, "remind-doc@example.com")
	patient := env.createPatient(t, "remind-patient@example.com")

	reminder, err := env.Reminders.Create(provider, CreateReminderInput{
		Title:        "Blood work",
		DueDate:      time.Now().AddDate(0, 0, 14),
		ReminderType: model.ReminderTypeCheckup,
		ForUserID:    patient.ID,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if reminder.UserID != patient.ID {
		t.Errorf("UserID = %s, want targeted patient %s", reminder.UserID, patient.ID)
	}
	if reminder.CreatedBy != provider.ID {
		t.Errorf("CreatedBy = %s, want provider %s", reminder.CreatedBy, provider.ID)
	}

	// Patients cannot target other users; ForUserID is ignored.
	other := env.createPatient(t, "remind-other@example.com")
	own, err := env.Reminders.Create(patient, CreateReminderInput{
		Title:     "Steal a reminder slot",
		DueDate:   time.Now().AddDate(0, 0, 1),
		ForUserID: other.ID,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if own.UserID != patient.ID {
		t.Errorf("patient ForUserID honored: UserID = %s, want %s", own.UserID, patient.ID)
	}
}

func TestRemindersUpcomingFilter(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "filter@example.com")

	past, err := env.Reminders.Create(patient, CreateReminderInput{
		Title:   "Missed dental cleaning",
		DueDate: time.Now().AddDate(0, 0, -7),
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	future, err := env.Reminders.Create(patient, CreateReminderInput{
		Title:   "Annual physical",
		DueDate: time.Now().AddDate(0, 0, 7),
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	all, err := env.Reminders.Reminders(patient.ID, nil, false)
	if err != nil {
		t.Fatalf("Reminders() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d reminders, want 2", len(all))
	}
	// Ascending by due date.
	if all[0].ID != past.ID {
		t.Errorf("first reminder = %s, want earliest due %s", all[0].ID, past.ID)
	}

	upcoming, err := env.Reminders.Reminders(patient.ID, nil, true)
	if err != nil {
		t.Fatalf("Reminders(upcoming) failed: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != future.ID {
		t.Errorf("upcoming = %d rows, want only the future reminder", len(upcoming))
	}
}

func TestCompleteReminder(t *testing.T) {
	env := newTestEnv(t)
	patient := env.createPatient(t, "complete@example.com")

	reminder, err := env.Reminders.Create(patient, CreateReminderInput{
		Title:   "Take medication",
		DueDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	completed, err := env.Reminders.Complete(patient.ID, reminder.ID)
	if err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}
	if !completed.IsCompleted {
		t.Error("reminder not marked completed")
	}
	if completed.CompletedDate == nil {
		t.Error("CompletedDate not set")
	}

	// Completed reminders drop out of the incomplete listing.
	incomplete := false
	remaining, err := env.Reminders.Reminders(patient.ID, &incomplete, false)
	if err != nil {
		t.Fatalf("Reminders() failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("got %d incomplete reminders, want 0", len(remaining))
	}
}

func TestReminderOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createPatient(t, "remind-alice@example.com")
	bob := env.createPatient(t, "remind-bob@example.com")

	reminder, err := env.Reminders.Create(alice, CreateReminderInput{
		Title:   "Private reminder",
		DueDate: time.Now().AddDate(0, 0, 3),
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	_, err = env.Reminders.Complete(bob.ID, reminder.ID)
	if !errors.Is(err, repository.ErrReminderNotFound) {
		t.Errorf("cross-user Complete() error = %v, want %v", err, repository.ErrReminderNotFound)
	}

	err = env.Reminders.Delete(bob.ID, reminder.ID)
	if !errors.Is(err, repository.ErrReminderNotFound) {
		t.Errorf("cross-user Delete() error = %v, want %v", err, repository.ErrReminderNotFound)
	}
}
