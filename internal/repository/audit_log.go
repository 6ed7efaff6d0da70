package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/vitaltrack/vitaltrack/internal/model"
)

type AuditLogRepository interface {
	Create(entry *model.AuditLog) error
	ByUser(userID string, limit int) ([]*model.AuditLog, error)
}

type auditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(entry *model.AuditLog) error {
	query := `INSERT INTO audit_logs (id, user_id, action, target_resource, target_id, details, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.Action,
		entry.TargetResource,
		entry.TargetID,
		entry.Details,
		entry.CreatedAt,
	)

	return err
}

func (r *auditLogRepository) ByUser(userID string, limit int) ([]*model.AuditLog, error) {
	entries := []*model.AuditLog{}
	query := `SELECT * FROM audit_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	err := r.db.Select(&entries, query, userID, limit)
	return entries, err
}
