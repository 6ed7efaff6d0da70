package model

// StepsProgress is the steps-goal projection.
type StepsProgress struct {
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Percentage int     `json:"percentage"`
}

// ActiveTimeProgress is the active_time-goal projection. Calories and
// distance come from today's log and default to zero.
type ActiveTimeProgress struct {
	Minutes  float64 `json:"minutes"`
	Calories float64 `json:"calories"`
	Distance float64 `json:"distance"`
}

// SleepProgress decomposes a minutes-valued sleep goal into hours and
// minutes. Start and end prefer the goal-level window over today's log.
type SleepProgress struct {
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Quality   string `json:"quality"`
}

// GoalProgress is one active goal with its derived progress. Exactly
// one of Steps, ActiveTime or Sleep is set when the goal type has a
// dedicated projection; generic types carry only the shared fields.
type GoalProgress struct {
	GoalID       string  `json:"id"`
	GoalType     string  `json:"goalType"`
	TargetValue  float64 `json:"targetValue"`
	CurrentValue float64 `json:"currentValue"`
	Unit         string  `json:"unit"`
	Percentage   int     `json:"percentage"`
	Description  string  `json:"description"`

	Steps      *StepsProgress      `json:"steps,omitempty"`
	ActiveTime *ActiveTimeProgress `json:"activeTime,omitempty"`
	Sleep      *SleepProgress      `json:"sleep,omitempty"`

	RecentLogs     []*GoalLog `json:"recentLogs"`
	HasLoggedToday bool       `json:"hasLoggedToday"`
}

// DashboardBuckets places goals with dedicated projections into named
// slots; everything else lands in Other.
type DashboardBuckets struct {
	Steps      *GoalProgress   `json:"steps"`
	ActiveTime *GoalProgress   `json:"activeTime"`
	Sleep      *GoalProgress   `json:"sleep"`
	Other      []*GoalProgress `json:"other"`
}

type DashboardSummary struct {
	TotalActiveGoals   int `json:"totalActiveGoals"`
	GoalsLoggedToday   int `json:"goalsLoggedToday"`
	GoalsAchievedToday int `json:"goalsAchievedToday"`
}

// DashboardView is the patient-facing daily view. A patient with no
// goals gets an empty-but-well-formed view, never an error.
type DashboardView struct {
	Goals    DashboardBuckets `json:"goals"`
	AllGoals []*GoalProgress  `json:"allGoals"`
	Summary  DashboardSummary `json:"summary"`
}
