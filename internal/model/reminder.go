package model

import (
	"time"
)

const (
	ReminderTypeCheckup     = "checkup"
	ReminderTypeVaccination = "vaccination"
	ReminderTypeScreening   = "screening"
	ReminderTypeDental      = "dental"
	ReminderTypeOther       = "other"
)

func ValidReminderType(t string) bool {
	switch t {
	case ReminderTypeCheckup, ReminderTypeVaccination, ReminderTypeScreening, ReminderTypeDental, ReminderTypeOther:
		return true
	}
	return false
}

// Reminder is a scheduled preventive-care task. It is "missed" when
// incomplete and past due, "upcoming" when incomplete and not yet due.
type Reminder struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"userId"`
	CreatedBy     string     `db:"created_by" json:"createdBy"`
	Title         string     `db:"title" json:"title"`
	Description   string     `db:"description" json:"description"`
	DueDate       time.Time  `db:"due_date" json:"dueDate"`
	ReminderType  string     `db:"reminder_type" json:"reminderType"`
	IsCompleted   bool       `db:"is_completed" json:"isCompleted"`
	CompletedDate *time.Time `db:"completed_date" json:"completedDate,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

func (r *Reminder) IsMissed(now time.Time) bool {
	return !r.IsCompleted && r.DueDate.Before(now)
}

func (r *Reminder) IsUpcoming(now time.Time) bool {
	return !r.IsCompleted && !r.DueDate.Before(now)
}
