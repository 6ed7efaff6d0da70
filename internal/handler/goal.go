package handler

import (
	"net/http"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/ctxkeys"
	"github.com/vitaltrack/vitaltrack/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var isActive *bool
	if v := r.URL.Query().Get("isActive"); v != "" {
		active := v == "true"
		isActive = &active
	}

	goals, err := h.goalService.Goals(user.ID, isActive)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"goals": goals})
}

type createGoalRequest struct {
	GoalType       string  `json:"goalType"`
	TargetValue    float64 `json:"targetValue"`
	Unit           string  `json:"unit"`
	Description    string  `json:"description"`
	EndDate        string  `json:"endDate"`
	SleepStartTime string  `json:"sleepStartTime"`
	SleepEndTime   string  `json:"sleepEndTime"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGoalRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.CreateGoalInput{
		GoalType:       req.GoalType,
		TargetValue:    req.TargetValue,
		Unit:           req.Unit,
		Description:    req.Description,
		SleepStartTime: req.SleepStartTime,
		SleepEndTime:   req.SleepEndTime,
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD")
			return
		}
		in.EndDate = &end
	}

	goal, err := h.goalService.Create(user.ID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "Goal created successfully", map[string]any{"goal": goal})
}

type updateGoalRequest struct {
	TargetValue    *float64 `json:"targetValue"`
	Unit           *string  `json:"unit"`
	Description    *string  `json:"description"`
	IsActive       *bool    `json:"isActive"`
	SleepStartTime *string  `json:"sleepStartTime"`
	SleepEndTime   *string  `json:"sleepEndTime"`
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req updateGoalRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.goalService.Update(user.ID, goalID, service.UpdateGoalInput{
		TargetValue:    req.TargetValue,
		Unit:           req.Unit,
		Description:    req.Description,
		IsActive:       req.IsActive,
		SleepStartTime: req.SleepStartTime,
		SleepEndTime:   req.SleepEndTime,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Goal updated successfully", map[string]any{"goal": goal})
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Goal deleted successfully", nil)
}

type logProgressRequest struct {
	ActualValue    *float64 `json:"actualValue"`
	Date           string   `json:"date"`
	Notes          string   `json:"notes"`
	Calories       *float64 `json:"calories"`
	Distance       *float64 `json:"distance"`
	SleepStartTime *string  `json:"sleepStartTime"`
	SleepEndTime   *string  `json:"sleepEndTime"`
	SleepQuality   *string  `json:"sleepQuality"`
}

func (h *GoalHandler) LogProgress(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req logProgressRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.LogProgressInput{
		ActualValue:    req.ActualValue,
		Notes:          req.Notes,
		Calories:       req.Calories,
		Distance:       req.Distance,
		SleepStartTime: req.SleepStartTime,
		SleepEndTime:   req.SleepEndTime,
		SleepQuality:   req.SleepQuality,
	}
	if req.Date != "" {
		when, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		in.When = when
	}

	log, goal, err := h.goalService.LogProgress(user.ID, goalID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "Goal progress logged successfully", map[string]any{
		"log":  log,
		"goal": goal,
	})
}

func (h *GoalHandler) Logs(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var from, to time.Time
	if v := r.URL.Query().Get("startDate"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("endDate"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD")
			return
		}
		to = parsed
	}

	goal, logs, err := h.goalService.Logs(user.ID, goalID, from, to)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"goal": goal,
		"logs": logs,
	})
}
