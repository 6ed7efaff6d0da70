package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

var (
	ErrReminderFieldsRequired = errors.New("title and due date are required")
	ErrInvalidReminderType    = errors.New("invalid reminder type")
)

type ReminderService struct {
	repo  repository.ReminderRepository
	audit *AuditService
}

func NewReminderService(repo repository.ReminderRepository, audit *AuditService) *ReminderService {
	return &ReminderService{
		repo:  repo,
		audit: audit,
	}
}

type CreateReminderInput struct {
	Title        string
	Description  string
	DueDate      time.Time
	ReminderType string
	// ForUserID targets another user; only providers may set it.
	ForUserID string
}

// Create makes a reminder for the actor, or for a patient when a
// provider supplies ForUserID.
func (s *ReminderService) Create(actor *model.User, in CreateReminderInput) (*model.Reminder, error) {
	if in.Title == "" || in.DueDate.IsZero() {
		return nil, ErrReminderFieldsRequired
	}

	reminderType := in.ReminderType
	if reminderType == "" {
		reminderType = model.ReminderTypeOther
	}
	if !model.ValidReminderType(reminderType) {
		return nil, ErrInvalidReminderType
	}

	targetUserID := actor.ID
	if actor.IsProvider() && in.ForUserID != "" {
		targetUserID = in.ForUserID
	}

	now := time.Now()
	reminder := &model.Reminder{
		ID:           uuid.New().String(),
		UserID:       targetUserID,
		CreatedBy:    actor.ID,
		Title:        in.Title,
		Description:  in.Description,
		DueDate:      in.DueDate,
		ReminderType: reminderType,
		IsCompleted:  false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.repo.Create(reminder)
	if err != nil {
		return nil, err
	}

	s.audit.Record(actor.ID, model.AuditReminderCreated, "PreventiveCareReminder", reminder.ID, nil)

	return reminder, nil
}

// Reminders lists the user's reminders ascending by due date.
// upcomingOnly narrows to incomplete reminders not yet due.
func (s *ReminderService) Reminders(userID string, isCompleted *bool, upcomingOnly bool) ([]*model.Reminder, error) {
	filter := repository.ReminderFilter{IsCompleted: isCompleted}
	if upcomingOnly {
		incomplete := false
		now := time.Now()
		filter.IsCompleted = &incomplete
		filter.DueAfter = &now
	}
	return s.repo.ByUser(userID, filter)
}

type UpdateReminderInput struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ReminderType *string
}

func (s *ReminderService) Update(userID, reminderID string, in UpdateReminderInput) (*model.Reminder, error) {
	reminder, err := s.repo.ByID(userID, reminderID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		reminder.Title = *in.Title
	}
	if in.Description != nil {
		reminder.Description = *in.Description
	}
	if in.DueDate != nil {
		reminder.DueDate = *in.DueDate
	}
	if in.ReminderType != nil {
		if !model.ValidReminderType(*in.ReminderType) {
			return nil, ErrInvalidReminderType
		}
		reminder.ReminderType = *in.ReminderType
	}
	reminder.UpdatedAt = time.Now()

	err = s.repo.Update(reminder)
	if err != nil {
		return nil, err
	}

	return reminder, nil
}

func (s *ReminderService) Complete(userID, reminderID string) (*model.Reminder, error) {
	reminder, err := s.repo.ByID(userID, reminderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reminder.IsCompleted = true
	reminder.CompletedDate = &now

	err = s.repo.Update(reminder)
	if err != nil {
		return nil, err
	}

	s.audit.Record(userID, model.AuditReminderCompleted, "PreventiveCareReminder", reminder.ID, nil)

	return reminder, nil
}

func (s *ReminderService) Delete(userID, reminderID string) error {
	return s.repo.Delete(userID, reminderID)
}
