package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vitaltrack/vitaltrack/internal/model"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
)

type AssignmentRepository interface {
	Create(assignment *model.Assignment) error
	ByPair(providerID, patientID string) (*model.Assignment, error)
	ActivePair(providerID, patientID string) (*model.Assignment, error)
	ActiveByProvider(providerID string) ([]*model.Assignment, error)
	Update(assignment *model.Assignment) error
}

type assignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.Assignment) error {
	query := `INSERT INTO assignments (id, provider_id, patient_id, assigned_date, is_active, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		assignment.ID,
		assignment.ProviderID,
		assignment.PatientID,
		assignment.AssignedDate,
		assignment.IsActive,
		assignment.Notes,
		assignment.CreatedAt,
		assignment.UpdatedAt,
	)

	return err
}

func (r *assignmentRepository) ByPair(providerID, patientID string) (*model.Assignment, error) {
	assignment := &model.Assignment{}
	query := `SELECT * FROM assignments WHERE provider_id = $1 AND patient_id = $2`

	err := r.db.Get(assignment, query, providerID, patientID)
	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}

	return assignment, err
}

func (r *assignmentRepository) ActivePair(providerID, patientID string) (*model.Assignment, error) {
	assignment := &model.Assignment{}
	query := `SELECT * FROM assignments WHERE provider_id = $1 AND patient_id = $2 AND is_active = TRUE`

	err := r.db.Get(assignment, query, providerID, patientID)
	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}

	return assignment, err
}

func (r *assignmentRepository) ActiveByProvider(providerID string) ([]*model.Assignment, error) {
	assignments := []*model.Assignment{}
	query := `SELECT * FROM assignments WHERE provider_id = $1 AND is_active = TRUE ORDER BY assigned_date DESC`

	err := r.db.Select(&assignments, query, providerID)
	return assignments, err
}

func (r *assignmentRepository) Update(assignment *model.Assignment) error {
	query := `UPDATE assignments SET is_active = $1, notes = $2, updated_at = $3 WHERE id = $4`

	result, err := r.db.Exec(query, assignment.IsActive, assignment.Notes, time.Now(), assignment.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}
