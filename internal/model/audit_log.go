package model

import (
	"time"
)

// Audit action vocabulary.
const (
	AuditGoalCreated       = "goal_created"
	AuditGoalUpdated       = "goal_updated"
	AuditGoalLogged        = "goal_logged"
	AuditReminderCreated   = "reminder_created"
	AuditReminderCompleted = "reminder_completed"
	AuditPatientAssigned   = "patient_assigned"
	AuditProfileView       = "profile_view"
	AuditProfileUpdate     = "profile_update"
)

type AuditLog struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"userId"`
	Action         string    `db:"action" json:"action"`
	TargetResource string    `db:"target_resource" json:"targetResource"`
	TargetID       string    `db:"target_id" json:"targetId"`
	Details        string    `db:"details" json:"details,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}
