package routes

import (
	"net/http"

	"github.com/vitaltrack/vitaltrack/internal/app"
	"github.com/vitaltrack/vitaltrack/internal/handler"
	"github.com/vitaltrack/vitaltrack/internal/middleware"
	"github.com/vitaltrack/vitaltrack/internal/model"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.Cfg.AppName)
	auth := handler.NewAuthHandler(app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService, app.AuditService)
	goal := handler.NewGoalHandler(app.GoalService)
	dashboard := handler.NewDashboardHandler(app.DashboardService)
	provider := handler.NewProviderHandler(app.ComplianceService, app.AssignmentService)
	reminder := handler.NewReminderHandler(app.ReminderService)
	tip := handler.NewHealthTipHandler(app.HealthTipService)
	article := handler.NewArticleHandler(app.ArticleService)

	mux := http.NewServeMux()

	requireProvider := middleware.RequireRole(model.RoleProvider)

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", health.Status)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))

	// Patient education articles
	mux.HandleFunc("GET /api/articles", article.List)
	mux.HandleFunc("GET /api/articles/category/{category}", article.ByCategory)
	mux.HandleFunc("GET /api/articles/{slug}", article.Show)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Profile
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profile.Get))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(profile.Update))
	mux.HandleFunc("GET /api/profile/audit-logs", middleware.RequireAuth(profile.AuditLogs))

	// Goals and progress
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/dashboard", middleware.RequireAuth(dashboard.Dashboard))
	mux.HandleFunc("PUT /api/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))
	mux.HandleFunc("POST /api/goals/{id}/log", middleware.RequireAuth(goal.LogProgress))
	mux.HandleFunc("GET /api/goals/{id}/logs", middleware.RequireAuth(goal.Logs))

	// Reminders
	mux.HandleFunc("GET /api/reminders", middleware.RequireAuth(reminder.List))
	mux.HandleFunc("POST /api/reminders", middleware.RequireAuth(reminder.Create))
	mux.HandleFunc("PUT /api/reminders/{id}", middleware.RequireAuth(reminder.Update))
	mux.HandleFunc("PATCH /api/reminders/{id}/complete", middleware.RequireAuth(reminder.Complete))
	mux.HandleFunc("DELETE /api/reminders/{id}", middleware.RequireAuth(reminder.Delete))

	// Health tips
	mux.HandleFunc("GET /api/health-tips", middleware.RequireAuth(tip.List))
	mux.HandleFunc("GET /api/health-tips/daily", middleware.RequireAuth(tip.Daily))

	// ============================================================================
	// PROVIDER ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/provider/patients", requireProvider(provider.Patients))
	mux.HandleFunc("POST /api/provider/patients", requireProvider(provider.Assign))
	mux.HandleFunc("GET /api/provider/patients/{patientId}", requireProvider(provider.PatientDetail))
	mux.HandleFunc("DELETE /api/provider/patients/{patientId}", requireProvider(provider.Unassign))

	mux.HandleFunc("POST /api/health-tips", requireProvider(tip.Create))
	mux.HandleFunc("PUT /api/health-tips/{id}", requireProvider(tip.Update))
	mux.HandleFunc("DELETE /api/health-tips/{id}", requireProvider(tip.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,       // Log all requests
		middleware.Auth(app.AuthService), // Resolve bearer token to user (optional)
	)
}
