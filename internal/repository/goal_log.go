package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vitaltrack/vitaltrack/internal/model"
)

type GoalLogRepository interface {
	// Upsert replaces the log row for (user, goal, day) in full and
	// refreshes the parent goal's progress cache in the same
	// transaction. log.ID is set to the surviving row's id.
	Upsert(log *model.GoalLog, goal *model.Goal) error
	Logs(userID, goalID string, from, to string) ([]*model.GoalLog, error)
	OnDay(userID, day string) ([]*model.GoalLog, error)
	Since(userID, day string) ([]*model.GoalLog, error)
	DistinctDaysSince(userID, day string) (int, error)
	SinceWithGoals(userID, day string) ([]*model.GoalLogDetail, error)
	DeleteByGoal(userID, goalID string) error
}

type goalLogRepository struct {
	db *sqlx.DB
}

func NewGoalLogRepository(db *sqlx.DB) GoalLogRepository {
	return &goalLogRepository{db: db}
}

func (r *goalLogRepository) Upsert(log *model.GoalLog, goal *model.Goal) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Conflict on the day key replaces every logged field; values never
	// accumulate across same-day logs.
	query := `INSERT INTO goal_logs (id, user_id, goal_id, date, actual_value, notes,
	              calories, distance, sleep_start_time, sleep_end_time, sleep_quality, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	          ON CONFLICT (user_id, goal_id, date) DO UPDATE SET
	              actual_value = excluded.actual_value,
	              notes = excluded.notes,
	              calories = excluded.calories,
	              distance = excluded.distance,
	              sleep_start_time = excluded.sleep_start_time,
	              sleep_end_time = excluded.sleep_end_time,
	              sleep_quality = excluded.sleep_quality,
	              updated_at = excluded.updated_at
	          RETURNING id`

	err = tx.QueryRow(query,
		log.ID,
		log.UserID,
		log.GoalID,
		log.Date,
		log.ActualValue,
		log.Notes,
		log.Calories,
		log.Distance,
		log.SleepStartTime,
		log.SleepEndTime,
		log.SleepQuality,
		log.CreatedAt,
		log.UpdatedAt,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert goal log: %w", err)
	}

	// Cache update rides the same transaction so a reader never sees
	// the ledger write without the refreshed current value.
	update := `UPDATE goals
	           SET current_value = $1, sleep_start_time = $2, sleep_end_time = $3, updated_at = $4
	           WHERE id = $5 AND user_id = $6`

	_, err = tx.Exec(update,
		goal.CurrentValue,
		goal.SleepStartTime,
		goal.SleepEndTime,
		time.Now(),
		goal.ID,
		goal.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal progress: %w", err)
	}

	return tx.Commit()
}

func (r *goalLogRepository) Logs(userID, goalID string, from, to string) ([]*model.GoalLog, error) {
	logs := []*model.GoalLog{}

	query := `SELECT * FROM goal_logs WHERE user_id = $1 AND goal_id = $2`
	args := []any{userID, goalID}

	// Day keys are ISO dates, so string comparison is date comparison.
	if from != "" {
		args = append(args, from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != "" {
		args = append(args, to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC"

	err := r.db.Select(&logs, query, args...)
	return logs, err
}

func (r *goalLogRepository) OnDay(userID, day string) ([]*model.GoalLog, error) {
	logs := []*model.GoalLog{}
	query := `SELECT * FROM goal_logs WHERE user_id = $1 AND date = $2`

	err := r.db.Select(&logs, query, userID, day)
	return logs, err
}

func (r *goalLogRepository) Since(userID, day string) ([]*model.GoalLog, error) {
	logs := []*model.GoalLog{}
	query := `SELECT * FROM goal_logs WHERE user_id = $1 AND date >= $2 ORDER BY date DESC`

	err := r.db.Select(&logs, query, userID, day)
	return logs, err
}

func (r *goalLogRepository) DistinctDaysSince(userID, day string) (int, error) {
	var count int
	query := `SELECT COUNT(DISTINCT date) FROM goal_logs WHERE user_id = $1 AND date >= $2`

	err := r.db.QueryRow(query, userID, day).Scan(&count)
	return count, err
}

func (r *goalLogRepository) SinceWithGoals(userID, day string) ([]*model.GoalLogDetail, error) {
	logs := []*model.GoalLogDetail{}
	query := `SELECT l.*,
	              g.goal_type AS goal_type,
	              g.unit AS goal_unit,
	              g.target_value AS goal_target_value,
	              g.description AS goal_description
	          FROM goal_logs l
	          JOIN goals g ON g.id = l.goal_id
	          WHERE l.user_id = $1 AND l.date >= $2
	          ORDER BY l.date DESC`

	err := r.db.Select(&logs, query, userID, day)
	return logs, err
}

func (r *goalLogRepository) DeleteByGoal(userID, goalID string) error {
	query := `DELETE FROM goal_logs WHERE user_id = $1 AND goal_id = $2`
	_, err := r.db.Exec(query, userID, goalID)
	return err
}
