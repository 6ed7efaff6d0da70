package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

var (
	// ErrPatientNotFound covers both a nonexistent patient and one the
	// provider is not assigned to; callers must not be able to tell the
	// two apart.
	ErrPatientNotFound = errors.New("patient not found or not assigned to you")
)

// complianceWindowDays is the trailing window (today inclusive) over
// which adherence is measured.
const complianceWindowDays = 7

// complianceBands is the ordered classification table, evaluated top
// down; the first band whose Min the percentage reaches wins. The
// mid-band label is a holdover from the legacy product and does not
// refer to actual missed checkups (those are counted separately from
// reminders).
var complianceBands = []struct {
	Min   int
	Label string
}{
	{80, model.ComplianceGoalMet},
	{50, model.ComplianceMissedCheckup},
	{0, model.ComplianceNeedsAttention},
}

func classifyCompliance(percentage int) string {
	for _, band := range complianceBands {
		if percentage >= band.Min {
			return band.Label
		}
	}
	return model.ComplianceNeedsAttention
}

// ComplianceService builds the provider-facing views over assigned
// patients.
type ComplianceService struct {
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
	goalRepo       repository.GoalRepository
	logRepo        repository.GoalLogRepository
	reminderRepo   repository.ReminderRepository
}

func NewComplianceService(
	assignmentRepo repository.AssignmentRepository,
	userRepo repository.UserRepository,
	goalRepo repository.GoalRepository,
	logRepo repository.GoalLogRepository,
	reminderRepo repository.ReminderRepository,
) *ComplianceService {
	return &ComplianceService{
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		goalRepo:       goalRepo,
		logRepo:        logRepo,
		reminderRepo:   reminderRepo,
	}
}

// Roster returns one compliance summary per actively assigned patient.
func (s *ComplianceService) Roster(providerID string) ([]*model.PatientComplianceSummary, error) {
	assignments, err := s.assignmentRepo.ActiveByProvider(providerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	weekStart := model.Day(now.AddDate(0, 0, -(complianceWindowDays - 1)))

	summaries := make([]*model.PatientComplianceSummary, 0, len(assignments))
	for _, assignment := range assignments {
		summary, err := s.summarizePatient(assignment, weekStart, now)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize patient %s: %w", assignment.PatientID, err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *ComplianceService) summarizePatient(assignment *model.Assignment, weekStart string, now time.Time) (*model.PatientComplianceSummary, error) {
	patient, err := s.userRepo.ByID(assignment.PatientID)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.ActiveGoals(patient.ID)
	if err != nil {
		return nil, err
	}

	recentLogs, err := s.logRepo.Since(patient.ID, weekStart)
	if err != nil {
		return nil, err
	}

	daysWithLogs, err := s.logRepo.DistinctDaysSince(patient.ID, weekStart)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.reminderRepo.CountUpcoming(patient.ID, now)
	if err != nil {
		return nil, err
	}

	missed, err := s.reminderRepo.CountMissed(patient.ID, now)
	if err != nil {
		return nil, err
	}

	// A patient with no active goals pins to zero rather than dividing
	// log activity into an undefined denominator.
	percentage := 0
	if len(goals) > 0 {
		percentage = int(math.Round(float64(daysWithLogs) / complianceWindowDays * 100))
	}

	return &model.PatientComplianceSummary{
		PatientID:            patient.ID,
		PatientName:          patient.FullName(),
		Email:                patient.Email,
		PhoneNumber:          patient.PhoneNumber,
		AssignedDate:         assignment.AssignedDate,
		ComplianceStatus:     classifyCompliance(percentage),
		CompliancePercentage: percentage,
		ActiveGoals:          len(goals),
		LogsLastWeek:         len(recentLogs),
		UpcomingReminders:    upcoming,
		MissedCheckups:       missed,
	}, nil
}

// PatientDetail returns the full bundle for one assigned patient. An
// inactive or missing assignment yields the same ErrPatientNotFound as
// a patient that does not exist.
func (s *ComplianceService) PatientDetail(providerID, patientID string) (*model.PatientDetail, error) {
	_, err := s.assignmentRepo.ActivePair(providerID, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	patient, err := s.userRepo.ByID(patientID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	goals, err := s.goalRepo.Goals(patientID, nil)
	if err != nil {
		return nil, err
	}

	monthStart := model.Day(time.Now().AddDate(0, 0, -30))
	logs, err := s.logRepo.SinceWithGoals(patientID, monthStart)
	if err != nil {
		return nil, err
	}

	reminders, err := s.reminderRepo.ByUser(patientID, repository.ReminderFilter{})
	if err != nil {
		return nil, err
	}

	// Credentials never leave the service layer.
	patient.PasswordHash = ""

	return &model.PatientDetail{
		Patient:   patient,
		Goals:     goals,
		Logs:      logs,
		Reminders: reminders,
	}, nil
}
