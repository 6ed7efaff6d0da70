package model

import (
	"time"
)

// Assignment is a provider↔patient care relationship. The pair is
// unique; deactivation is a soft toggle so the history survives for
// audit continuity.
type Assignment struct {
	ID           string    `db:"id" json:"id"`
	ProviderID   string    `db:"provider_id" json:"providerId"`
	PatientID    string    `db:"patient_id" json:"patientId"`
	AssignedDate time.Time `db:"assigned_date" json:"assignedDate"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	Notes        string    `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
