package service

import (
	"math"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

// DashboardService composes the goal registry and the progress ledger
// into the patient-facing daily view.
type DashboardService struct {
	goalRepo repository.GoalRepository
	logRepo  repository.GoalLogRepository
}

func NewDashboardService(goalRepo repository.GoalRepository, logRepo repository.GoalLogRepository) *DashboardService {
	return &DashboardService{
		goalRepo: goalRepo,
		logRepo:  logRepo,
	}
}

// progressPercentage caps at 100 no matter how far past the target the
// patient went, and never goes negative.
func progressPercentage(current, target float64) int {
	pct := int(math.Round(current / target * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

func (s *DashboardService) Dashboard(userID string) (*model.DashboardView, error) {
	now := time.Now()
	today := model.Day(now)
	weekStart := model.Day(now.AddDate(0, 0, -6))

	goals, err := s.goalRepo.ActiveGoals(userID)
	if err != nil {
		return nil, err
	}

	todayLogs, err := s.logRepo.OnDay(userID, today)
	if err != nil {
		return nil, err
	}

	// At most one log per goal per day by the ledger's uniqueness
	// invariant.
	todayByGoal := make(map[string]*model.GoalLog, len(todayLogs))
	for _, log := range todayLogs {
		todayByGoal[log.GoalID] = log
	}

	view := &model.DashboardView{
		AllGoals: []*model.GoalProgress{},
		Goals:    model.DashboardBuckets{Other: []*model.GoalProgress{}},
	}

	for _, goal := range goals {
		todayLog := todayByGoal[goal.ID]

		recent, err := s.logRepo.Logs(userID, goal.ID, weekStart, "")
		if err != nil {
			return nil, err
		}

		// The cache should already hold the latest logged value; fall
		// back to today's entry if it was never populated.
		current := goal.CurrentValue
		if current == 0 && todayLog != nil {
			current = todayLog.ActualValue
		}

		progress := &model.GoalProgress{
			GoalID:         goal.ID,
			GoalType:       goal.GoalType,
			TargetValue:    goal.TargetValue,
			CurrentValue:   current,
			Unit:           goal.Unit,
			Percentage:     progressPercentage(current, goal.TargetValue),
			Description:    goal.Description,
			RecentLogs:     recent,
			HasLoggedToday: todayLog != nil,
		}
		s.project(progress, goal, todayLog, current)

		view.AllGoals = append(view.AllGoals, progress)

		switch goal.GoalType {
		case model.GoalTypeSteps:
			if view.Goals.Steps == nil {
				view.Goals.Steps = progress
			}
		case model.GoalTypeActiveTime:
			if view.Goals.ActiveTime == nil {
				view.Goals.ActiveTime = progress
			}
		case model.GoalTypeSleep:
			if view.Goals.Sleep == nil {
				view.Goals.Sleep = progress
			}
		default:
			view.Goals.Other = append(view.Goals.Other, progress)
		}
	}

	view.Summary = s.summarize(goals, todayLogs)

	return view, nil
}

// project fills the goal-type specific sub-structure. Types without a
// dedicated shape only carry the generic fields.
func (s *DashboardService) project(p *model.GoalProgress, goal *model.Goal, todayLog *model.GoalLog, current float64) {
	switch goal.GoalType {
	case model.GoalTypeSteps:
		p.Steps = &model.StepsProgress{
			Current:    current,
			Target:     goal.TargetValue,
			Percentage: p.Percentage,
		}

	case model.GoalTypeActiveTime:
		active := &model.ActiveTimeProgress{Minutes: current}
		if todayLog != nil {
			if todayLog.Calories != nil {
				active.Calories = *todayLog.Calories
			}
			if todayLog.Distance != nil {
				active.Distance = *todayLog.Distance
			}
		}
		p.ActiveTime = active

	case model.GoalTypeSleep:
		// Sleep values are stored in minutes.
		sleep := &model.SleepProgress{
			Hours:     int(current) / 60,
			Minutes:   int(current) % 60,
			StartTime: goal.SleepStartTime,
			EndTime:   goal.SleepEndTime,
			Quality:   model.SleepQualityGood,
		}
		if todayLog != nil {
			if sleep.StartTime == "" && todayLog.SleepStartTime != nil {
				sleep.StartTime = *todayLog.SleepStartTime
			}
			if sleep.EndTime == "" && todayLog.SleepEndTime != nil {
				sleep.EndTime = *todayLog.SleepEndTime
			}
			if todayLog.SleepQuality != nil && *todayLog.SleepQuality != "" {
				sleep.Quality = *todayLog.SleepQuality
			}
		}
		p.Sleep = sleep
	}
}

func (s *DashboardService) summarize(goals []*model.Goal, todayLogs []*model.GoalLog) model.DashboardSummary {
	byID := make(map[string]*model.Goal, len(goals))
	for _, goal := range goals {
		byID[goal.ID] = goal
	}

	achieved := 0
	for _, log := range todayLogs {
		goal, ok := byID[log.GoalID]
		if ok && log.ActualValue >= goal.TargetValue {
			achieved++
		}
	}

	return model.DashboardSummary{
		TotalActiveGoals:   len(goals),
		GoalsLoggedToday:   len(todayLogs),
		GoalsAchievedToday: achieved,
	}
}
