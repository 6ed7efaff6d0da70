package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vitaltrack/vitaltrack/internal/config"
	"github.com/vitaltrack/vitaltrack/internal/db"
	"github.com/vitaltrack/vitaltrack/internal/repository"
	"github.com/vitaltrack/vitaltrack/internal/service"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	AuditService      *service.AuditService
	AuthService       *service.AuthService
	ProfileService    *service.ProfileService
	GoalService       *service.GoalService
	DashboardService  *service.DashboardService
	ComplianceService *service.ComplianceService
	AssignmentService *service.AssignmentService
	ReminderService   *service.ReminderService
	HealthTipService  *service.HealthTipService
	ArticleService    *service.ArticleService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	goalLogRepository := repository.NewGoalLogRepository(database)
	assignmentRepository := repository.NewAssignmentRepository(database)
	reminderRepository := repository.NewReminderRepository(database)
	auditLogRepository := repository.NewAuditLogRepository(database)
	healthTipRepository := repository.NewHealthTipRepository(database)

	// Services
	auditService := service.NewAuditService(auditLogRepository)
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	profileService := service.NewProfileService(userRepository, auditService)
	goalService := service.NewGoalService(goalRepository, goalLogRepository, auditService)
	dashboardService := service.NewDashboardService(goalRepository, goalLogRepository)
	complianceService := service.NewComplianceService(
		assignmentRepository,
		userRepository,
		goalRepository,
		goalLogRepository,
		reminderRepository,
	)
	assignmentService := service.NewAssignmentService(assignmentRepository, userRepository, auditService)
	reminderService := service.NewReminderService(reminderRepository, auditService)
	healthTipService := service.NewHealthTipService(healthTipRepository)
	articleService := service.NewArticleService(cfg.ContentPath)

	return &App{
		Cfg:               cfg,
		DB:                database,
		AuditService:      auditService,
		AuthService:       authService,
		ProfileService:    profileService,
		GoalService:       goalService,
		DashboardService:  dashboardService,
		ComplianceService: complianceService,
		AssignmentService: assignmentService,
		ReminderService:   reminderService,
		HealthTipService:  healthTipService,
		ArticleService:    articleService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
