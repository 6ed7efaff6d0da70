package model

import (
	"time"
)

const (
	SleepQualityPoor      = "poor"
	SleepQualityFair      = "fair"
	SleepQualityGood      = "good"
	SleepQualityExcellent = "excellent"
)

func ValidSleepQuality(q string) bool {
	switch q {
	case SleepQualityPoor, SleepQualityFair, SleepQualityGood, SleepQualityExcellent:
		return true
	}
	return false
}

// DayFormat is the canonical calendar-day key for goal logs. Logs are
// unique per (user, goal, day); any time-of-day on the same calendar
// date maps to the same key.
const DayFormat = "2006-01-02"

// Day truncates t to its calendar-day key.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// GoalLog is one day's recorded progress against a goal. Logging again
// on the same day replaces the row in full; values never accumulate.
type GoalLog struct {
	ID          string  `db:"id" json:"id"`
	UserID      string  `db:"user_id" json:"userId"`
	GoalID      string  `db:"goal_id" json:"goalId"`
	Date        string  `db:"date" json:"date"`
	ActualValue float64 `db:"actual_value" json:"actualValue"`
	Notes       string  `db:"notes" json:"notes"`

	// Goal-type specific extras, present only when supplied.
	Calories       *float64 `db:"calories" json:"calories,omitempty"`
	Distance       *float64 `db:"distance" json:"distance,omitempty"`
	SleepStartTime *string  `db:"sleep_start_time" json:"sleepStartTime,omitempty"`
	SleepEndTime   *string  `db:"sleep_end_time" json:"sleepEndTime,omitempty"`
	SleepQuality   *string  `db:"sleep_quality" json:"sleepQuality,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// GoalLogDetail is a log row joined with the metadata of its goal, used
// by the provider patient-detail view.
type GoalLogDetail struct {
	GoalLog
	GoalType        string  `db:"goal_type" json:"goalType"`
	GoalUnit        string  `db:"goal_unit" json:"goalUnit"`
	GoalTargetValue float64 `db:"goal_target_value" json:"goalTargetValue"`
	GoalDescription string  `db:"goal_description" json:"goalDescription"`
}
