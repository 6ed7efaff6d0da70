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
	ErrHealthTipNotFound = errors.New("health tip not found")
)

type HealthTipRepository interface {
	Create(tip *model.HealthTip) error
	ByID(id string) (*model.HealthTip, error)
	Active(category string, limit int) ([]*model.HealthTip, error)
	CountActive(category string) (int, error)
	ActiveAt(category string, offset int) (*model.HealthTip, error)
	Update(tip *model.HealthTip) error
	Delete(id string) error
}

type healthTipRepository struct {
	db *sqlx.DB
}

func NewHealthTipRepository(db *sqlx.DB) HealthTipRepository {
	return &healthTipRepository{db: db}
}

func (r *healthTipRepository) Create(tip *model.HealthTip) error {
	query := `INSERT INTO health_tips (id, title, content, category, is_active, created_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		tip.ID,
		tip.Title,
		tip.Content,
		tip.Category,
		tip.IsActive,
		tip.CreatedBy,
		tip.CreatedAt,
		tip.UpdatedAt,
	)

	return err
}

func (r *healthTipRepository) ByID(id string) (*model.HealthTip, error) {
	tip := &model.HealthTip{}
	query := `SELECT * FROM health_tips WHERE id = $1`

	err := r.db.Get(tip, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrHealthTipNotFound
	}

	return tip, err
}

func (r *healthTipRepository) Active(category string, limit int) ([]*model.HealthTip, error) {
	tips := []*model.HealthTip{}

	query := `SELECT * FROM health_tips WHERE is_active = TRUE`
	args := []any{}

	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	err := r.db.Select(&tips, query, args...)
	return tips, err
}

func (r *healthTipRepository) CountActive(category string) (int, error) {
	var count int

	if category == "" {
		err := r.db.QueryRow(`SELECT COUNT(*) FROM health_tips WHERE is_active = TRUE`).Scan(&count)
		return count, err
	}

	err := r.db.QueryRow(`SELECT COUNT(*) FROM health_tips WHERE is_active = TRUE AND category = $1`, category).Scan(&count)
	return count, err
}

// ActiveAt returns the active tip at the given offset, newest first.
// Backs the random daily-tip pick (count then offset).
func (r *healthTipRepository) ActiveAt(category string, offset int) (*model.HealthTip, error) {
	tip := &model.HealthTip{}

	query := `SELECT * FROM health_tips WHERE is_active = TRUE`
	args := []any{}

	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	args = append(args, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT 1 OFFSET $%d", len(args))

	err := r.db.Get(tip, query, args...)
	if err == sql.ErrNoRows {
		return nil, ErrHealthTipNotFound
	}

	return tip, err
}

func (r *healthTipRepository) Update(tip *model.HealthTip) error {
	query := `UPDATE health_tips
	          SET title = $1, content = $2, category = $3, is_active = $4, updated_at = $5
	          WHERE id = $6`

	result, err := r.db.Exec(query,
		tip.Title,
		tip.Content,
		tip.Category,
		tip.IsActive,
		time.Now(),
		tip.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHealthTipNotFound
	}

	return nil
}

func (r *healthTipRepository) Delete(id string) error {
	query := `DELETE FROM health_tips WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHealthTipNotFound
	}

	return nil
}
