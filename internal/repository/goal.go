package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vitaltrack/vitaltrack/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(userID, goalID string) (*model.Goal, error)
	Goals(userID string, isActive *bool) ([]*model.Goal, error)
	ActiveGoals(userID string) ([]*model.Goal, error)
	Update(goal *model.Goal) error
	Delete(userID, goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, goal_type, target_value, unit, description, start_date, end_date,
	              is_active, current_value, sleep_start_time, sleep_end_time, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.GoalType,
		goal.TargetValue,
		goal.Unit,
		goal.Description,
		goal.StartDate,
		goal.EndDate,
		goal.IsActive,
		goal.CurrentValue,
		goal.SleepStartTime,
		goal.SleepEndTime,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Goals(userID string, isActive *bool) ([]*model.Goal, error) {
	goals := []*model.Goal{}

	if isActive == nil {
		query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at DESC`
		err := r.db.Select(&goals, query, userID)
		return goals, err
	}

	query := `SELECT * FROM goals WHERE user_id = $1 AND is_active = $2 ORDER BY created_at DESC`
	err := r.db.Select(&goals, query, userID, *isActive)
	return goals, err
}

func (r *goalRepository) ActiveGoals(userID string) ([]*model.Goal, error) {
	active := true
	return r.Goals(userID, &active)
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET goal_type = $1, target_value = $2, unit = $3, description = $4, end_date = $5,
	              is_active = $6, current_value = $7, sleep_start_time = $8, sleep_end_time = $9, updated_at = $10
	          WHERE id = $11 AND user_id = $12`

	result, err := r.db.Exec(query,
		goal.GoalType,
		goal.TargetValue,
		goal.Unit,
		goal.Description,
		goal.EndDate,
		goal.IsActive,
		goal.CurrentValue,
		goal.SleepStartTime,
		goal.SleepEndTime,
		time.Now(),
		goal.ID,
		goal.UserID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(userID, goalID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
