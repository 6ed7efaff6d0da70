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
	ErrGoalFieldsRequired  = errors.New("goal type, target value, and unit are required")
	ErrInvalidGoalType     = errors.New("invalid goal type")
	ErrInvalidTargetValue  = errors.New("target value must be greater than zero")
	ErrActualValueRequired = errors.New("actual value is required")
	ErrInvalidSleepQuality = errors.New("invalid sleep quality")
)

// GoalService owns the goal registry and the per-day progress ledger.
type GoalService struct {
	repo    repository.GoalRepository
	logRepo repository.GoalLogRepository
	audit   *AuditService
}

func NewGoalService(repo repository.GoalRepository, logRepo repository.GoalLogRepository, audit *AuditService) *GoalService {
	return &GoalService{
		repo:    repo,
		logRepo: logRepo,
		audit:   audit,
	}
}

type CreateGoalInput struct {
	GoalType       string
	TargetValue    float64
	Unit           string
	Description    string
	EndDate        *time.Time
	SleepStartTime string
	SleepEndTime   string
}

func (s *GoalService) Create(userID string, in CreateGoalInput) (*model.Goal, error) {
	if in.GoalType == "" || in.TargetValue == 0 || in.Unit == "" {
		return nil, ErrGoalFieldsRequired
	}
	if !model.ValidGoalType(in.GoalType) {
		return nil, ErrInvalidGoalType
	}
	if in.TargetValue <= 0 {
		return nil, ErrInvalidTargetValue
	}

	now := time.Now()
	goal := &model.Goal{
		ID:             uuid.New().String(),
		UserID:         userID,
		GoalType:       in.GoalType,
		TargetValue:    in.TargetValue,
		Unit:           in.Unit,
		Description:    in.Description,
		StartDate:      now,
		EndDate:        in.EndDate,
		IsActive:       true,
		CurrentValue:   0,
		SleepStartTime: in.SleepStartTime,
		SleepEndTime:   in.SleepEndTime,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.audit.Record(userID, model.AuditGoalCreated, "WellnessGoal", goal.ID, nil)

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Goals(userID string, isActive *bool) ([]*model.Goal, error) {
	return s.repo.Goals(userID, isActive)
}

// UpdateGoalInput applies partial updates; nil fields keep their
// current value.
type UpdateGoalInput struct {
	TargetValue    *float64
	Unit           *string
	Description    *string
	EndDate        *time.Time
	IsActive       *bool
	SleepStartTime *string
	SleepEndTime   *string
}

func (s *GoalService) Update(userID, goalID string, in UpdateGoalInput) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if in.TargetValue != nil {
		if *in.TargetValue <= 0 {
			return nil, ErrInvalidTargetValue
		}
		goal.TargetValue = *in.TargetValue
	}
	if in.Unit != nil {
		goal.Unit = *in.Unit
	}
	if in.Description != nil {
		goal.Description = *in.Description
	}
	if in.EndDate != nil {
		goal.EndDate = in.EndDate
	}
	if in.IsActive != nil {
		goal.IsActive = *in.IsActive
	}
	if in.SleepStartTime != nil {
		goal.SleepStartTime = *in.SleepStartTime
	}
	if in.SleepEndTime != nil {
		goal.SleepEndTime = *in.SleepEndTime
	}
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	s.audit.Record(userID, model.AuditGoalUpdated, "WellnessGoal", goal.ID, nil)

	return goal, nil
}

func (s *GoalService) Delete(userID, goalID string) error {
	_, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return err
	}

	// Ledger rows go first so the goal row never dangles references.
	err = s.logRepo.DeleteByGoal(userID, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal logs: %w", err)
	}

	return s.repo.Delete(userID, goalID)
}

// LogProgressInput is one day's progress report. When is the moment the
// patient logged; it collapses to a calendar-day key, so two logs on
// the same date replace each other regardless of time of day.
type LogProgressInput struct {
	ActualValue    *float64
	When           time.Time
	Notes          string
	Calories       *float64
	Distance       *float64
	SleepStartTime *string
	SleepEndTime   *string
	SleepQuality   *string
}

// LogProgress upserts the (patient, goal, day) ledger row and refreshes
// the goal's cached current value in one transaction. All validation
// happens before any write.
func (s *GoalService) LogProgress(userID, goalID string, in LogProgressInput) (*model.GoalLog, *model.Goal, error) {
	if in.ActualValue == nil {
		return nil, nil, ErrActualValueRequired
	}
	if in.SleepQuality != nil && !model.ValidSleepQuality(*in.SleepQuality) {
		return nil, nil, ErrInvalidSleepQuality
	}

	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, nil, err
	}

	when := in.When
	if when.IsZero() {
		when = time.Now()
	}

	now := time.Now()
	log := &model.GoalLog{
		ID:             uuid.New().String(),
		UserID:         userID,
		GoalID:         goalID,
		Date:           model.Day(when),
		ActualValue:    *in.ActualValue,
		Notes:          in.Notes,
		Calories:       in.Calories,
		Distance:       in.Distance,
		SleepStartTime: in.SleepStartTime,
		SleepEndTime:   in.SleepEndTime,
		SleepQuality:   in.SleepQuality,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	goal.CurrentValue = *in.ActualValue
	if in.SleepStartTime != nil {
		goal.SleepStartTime = *in.SleepStartTime
	}
	if in.SleepEndTime != nil {
		goal.SleepEndTime = *in.SleepEndTime
	}

	err = s.logRepo.Upsert(log, goal)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to log progress: %w", err)
	}

	s.audit.Record(userID, model.AuditGoalLogged, "GoalLog", log.ID, nil)

	return log, goal, nil
}

// Logs returns the goal and its entries in [from, to], newest first.
// Zero bounds leave that side of the range open.
func (s *GoalService) Logs(userID, goalID string, from, to time.Time) (*model.Goal, []*model.GoalLog, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, nil, err
	}

	var fromDay, toDay string
	if !from.IsZero() {
		fromDay = model.Day(from)
	}
	if !to.IsZero() {
		toDay = model.Day(to)
	}

	logs, err := s.logRepo.Logs(userID, goalID, fromDay, toDay)
	if err != nil {
		return nil, nil, err
	}

	return goal, logs, nil
}
