package model

import (
	"time"
)

const (
	GoalTypeSteps      = "steps"
	GoalTypeWater      = "water"
	GoalTypeSleep      = "sleep"
	GoalTypeActiveTime = "active_time"
	GoalTypeExercise   = "exercise"
	GoalTypeCustom     = "custom"
)

// GoalTypes lists the accepted goal type values in declaration order.
var GoalTypes = []string{
	GoalTypeSteps,
	GoalTypeWater,
	GoalTypeSleep,
	GoalTypeActiveTime,
	GoalTypeExercise,
	GoalTypeCustom,
}

func ValidGoalType(t string) bool {
	for _, v := range GoalTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Goal is a patient-owned wellness target. CurrentValue is a cache of
// the most recently logged actual value; goal_logs is the source of
// truth and the only writer of this field.
type Goal struct {
	ID           string     `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"userId"`
	GoalType     string     `db:"goal_type" json:"goalType"`
	TargetValue  float64    `db:"target_value" json:"targetValue"`
	Unit         string     `db:"unit" json:"unit"`
	Description  string     `db:"description" json:"description"`
	StartDate    time.Time  `db:"start_date" json:"startDate"`
	EndDate      *time.Time `db:"end_date" json:"endDate,omitempty"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	CurrentValue float64    `db:"current_value" json:"currentValue"`

	// Sleep goals only: preferred sleep window, free-form time-of-day
	// strings like "11:30 pm".
	SleepStartTime string `db:"sleep_start_time" json:"sleepStartTime,omitempty"`
	SleepEndTime   string `db:"sleep_end_time" json:"sleepEndTime,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
