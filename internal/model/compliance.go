package model

import (
	"time"
)

// Compliance band labels. "Missed Preventive Checkup" is retained
// verbatim from the legacy product where it names the mid-range
// adherence band, not an actual missed checkup.
const (
	ComplianceGoalMet        = "Goal Met"
	ComplianceMissedCheckup  = "Missed Preventive Checkup"
	ComplianceNeedsAttention = "Needs Attention"
)

// PatientComplianceSummary is one roster row for a provider's assigned
// patient.
type PatientComplianceSummary struct {
	PatientID            string    `json:"patientId"`
	PatientName          string    `json:"patientName"`
	Email                string    `json:"email"`
	PhoneNumber          string    `json:"phoneNumber"`
	AssignedDate         time.Time `json:"assignedDate"`
	ComplianceStatus     string    `json:"complianceStatus"`
	CompliancePercentage int       `json:"compliancePercentage"`
	ActiveGoals          int       `json:"activeGoals"`
	LogsLastWeek         int       `json:"logsLastWeek"`
	UpcomingReminders    int       `json:"upcomingReminders"`
	MissedCheckups       int       `json:"missedCheckups"`
}

// PatientDetail is the full provider-facing bundle for one assigned
// patient: profile minus credentials, every goal, the last 30 days of
// logs joined with goal metadata, and all reminders.
type PatientDetail struct {
	Patient   *User            `json:"patient"`
	Goals     []*Goal          `json:"goals"`
	Logs      []*GoalLogDetail `json:"logs"`
	Reminders []*Reminder      `json:"reminders"`
}
