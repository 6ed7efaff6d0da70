package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vitaltrack/vitaltrack/internal/db"
	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

// testEnv wires every service against a real migrated SQLite database
// in a temp directory, so tests exercise the actual SQL.
type testEnv struct {
	db          *sqlx.DB
	Audit       *AuditService
	Auth        *AuthService
	Goals       *GoalService
	Dashboard   *DashboardService
	Compliance  *ComplianceService
	Assignments *AssignmentService
	Reminders   *ReminderService
	Profile     *ProfileService
	Tips        *HealthTipService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// busy_timeout keeps the fire-and-forget audit writes from racing
	// test queries into SQLITE_BUSY; WAL matches the production DSN.
	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db")+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	logRepo := repository.NewGoalLogRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)
	reminderRepo := repository.NewReminderRepository(database)
	auditRepo := repository.NewAuditLogRepository(database)
	tipRepo := repository.NewHealthTipRepository(database)

	audit := NewAuditService(auditRepo)

	return &testEnv{
		db:          database,
		Audit:       audit,
		Auth:        NewAuthService(userRepo, "test-secret", time.Hour),
		Goals:       NewGoalService(goalRepo, logRepo, audit),
		Dashboard:   NewDashboardService(goalRepo, logRepo),
		Compliance:  NewComplianceService(assignmentRepo, userRepo, goalRepo, logRepo, reminderRepo),
		Assignments: NewAssignmentService(assignmentRepo, userRepo, audit),
		Reminders:   NewReminderService(reminderRepo, audit),
		Profile:     NewProfileService(userRepo, audit),
		Tips:        NewHealthTipService(tipRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, email, role, name string) *model.User {
	t.Helper()

	user, err := e.Auth.Register(RegisterInput{
		Email:    email,
		Password: "correct-horse-battery",
		Role:     role,
		Name:     name,
	})
	if err != nil {
		t.Fatalf("failed to register %s: %v", email, err)
	}
	return user
}

func (e *testEnv) createPatient(t *testing.T, email string) *model.User {
	return e.createUser(t, email, model.RolePatient, "Test Patient")
}

func (e *testEnv) createProvider(t *testing.T, email string) *model.User {
	return e.createUser(t, email, model.RoleProvider, "Test Provider")
}

func (e *testEnv) createGoal(t *testing.T, userID, goalType string, target float64, unit string) *model.Goal {
	t.Helper()

	goal, err := e.Goals.Create(userID, CreateGoalInput{
		GoalType:    goalType,
		TargetValue: target,
		Unit:        unit,
	})
	if err != nil {
		t.Fatalf("failed to create %s goal: %v", goalType, err)
	}
	return goal
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }
