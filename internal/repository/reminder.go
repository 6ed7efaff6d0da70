package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vitaltrack/vitaltrack/internal/model"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
)

// ReminderFilter narrows a reminder listing. Nil fields match anything.
type ReminderFilter struct {
	IsCompleted *bool
	// DueAfter keeps reminders due at or after the given instant.
	DueAfter *time.Time
}

type ReminderRepository interface {
	Create(reminder *model.Reminder) error
	ByID(userID, reminderID string) (*model.Reminder, error)
	ByUser(userID string, filter ReminderFilter) ([]*model.Reminder, error)
	Update(reminder *model.Reminder) error
	Delete(userID, reminderID string) error
	CountUpcoming(userID string, now time.Time) (int, error)
	CountMissed(userID string, now time.Time) (int, error)
}

type reminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(reminder *model.Reminder) error {
	query := `INSERT INTO reminders (id, user_id, created_by, title, description, due_date, reminder_type,
	              is_completed, completed_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		reminder.ID,
		reminder.UserID,
		reminder.CreatedBy,
		reminder.Title,
		reminder.Description,
		reminder.DueDate,
		reminder.ReminderType,
		reminder.IsCompleted,
		reminder.CompletedDate,
		reminder.CreatedAt,
		reminder.UpdatedAt,
	)

	return err
}

func (r *reminderRepository) ByID(userID, reminderID string) (*model.Reminder, error) {
	reminder := &model.Reminder{}
	query := `SELECT * FROM reminders WHERE id = $1 AND user_id = $2`

	err := r.db.Get(reminder, query, reminderID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrReminderNotFound
	}

	return reminder, err
}

func (r *reminderRepository) ByUser(userID string, filter ReminderFilter) ([]*model.Reminder, error) {
	reminders := []*model.Reminder{}

	query := `SELECT * FROM reminders WHERE user_id = $1`
	args := []any{userID}

	if filter.IsCompleted != nil {
		args = append(args, *filter.IsCompleted)
		query += fmt.Sprintf(" AND is_completed = $%d", len(args))
	}
	if filter.DueAfter != nil {
		args = append(args, *filter.DueAfter)
		query += fmt.Sprintf(" AND due_date >= $%d", len(args))
	}
	query += " ORDER BY due_date ASC"

	err := r.db.Select(&reminders, query, args...)
	return reminders, err
}

func (r *reminderRepository) Update(reminder *model.Reminder) error {
	query := `UPDATE reminders
	          SET title = $1, description = $2, due_date = $3, reminder_type = $4,
	              is_completed = $5, completed_date = $6, updated_at = $7
	          WHERE id = $8 AND user_id = $9`

	result, err := r.db.Exec(query,
		reminder.Title,
		reminder.Description,
		reminder.DueDate,
		reminder.ReminderType,
		reminder.IsCompleted,
		reminder.CompletedDate,
		time.Now(),
		reminder.ID,
		reminder.UserID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepository) Delete(userID, reminderID string) error {
	query := `DELETE FROM reminders WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, reminderID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepository) CountUpcoming(userID string, now time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM reminders WHERE user_id = $1 AND is_completed = FALSE AND due_date >= $2`

	err := r.db.QueryRow(query, userID, now).Scan(&count)
	return count, err
}

func (r *reminderRepository) CountMissed(userID string, now time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM reminders WHERE user_id = $1 AND is_completed = FALSE AND due_date < $2`

	err := r.db.QueryRow(query, userID, now).Scan(&count)
	return count, err
}
