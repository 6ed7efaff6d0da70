package service

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

// AuditService records who did what to which resource. Recording is
// fire-and-forget: failures are logged and never surface to the caller,
// and the write never blocks the primary operation.
type AuditService struct {
	repo repository.AuditLogRepository
}

func NewAuditService(repo repository.AuditLogRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Record(actorID, action, targetResource, targetID string, details map[string]any) {
	entry := &model.AuditLog{
		ID:             uuid.New().String(),
		UserID:         actorID,
		Action:         action,
		TargetResource: targetResource,
		TargetID:       targetID,
		CreatedAt:      time.Now(),
	}

	if len(details) > 0 {
		raw, err := json.Marshal(details)
		if err == nil {
			entry.Details = string(raw)
		}
	}

	go func() {
		err := s.repo.Create(entry)
		if err != nil {
			slog.Error("failed to write audit log", "error", err, "action", action, "user_id", actorID)
		}
	}()
}

func (s *AuditService) Logs(userID string, limit int) ([]*model.AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ByUser(userID, limit)
}
