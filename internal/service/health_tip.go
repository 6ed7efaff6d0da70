package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

var (
	ErrTipFieldsRequired = errors.New("title and content are required")
	ErrNoTipsAvailable   = errors.New("no health tips available")
)

type HealthTipService struct {
	repo repository.HealthTipRepository
}

func NewHealthTipService(repo repository.HealthTipRepository) *HealthTipService {
	return &HealthTipService{repo: repo}
}

func (s *HealthTipService) Create(createdBy, title, content, category string) (*model.HealthTip, error) {
	if title == "" || content == "" {
		return nil, ErrTipFieldsRequired
	}

	now := time.Now()
	tip := &model.HealthTip{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Category:  category,
		IsActive:  true,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(tip)
	if err != nil {
		return nil, err
	}

	return tip, nil
}

func (s *HealthTipService) Tips(category string) ([]*model.HealthTip, error) {
	return s.repo.Active(category, 10)
}

// DailyTip picks one active tip at random.
func (s *HealthTipService) DailyTip(category string) (*model.HealthTip, error) {
	count, err := s.repo.CountActive(category)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoTipsAvailable
	}

	return s.repo.ActiveAt(category, rand.Intn(count))
}

type UpdateTipInput struct {
	Title    *string
	Content  *string
	Category *string
	IsActive *bool
}

func (s *HealthTipService) Update(tipID string, in UpdateTipInput) (*model.HealthTip, error) {
	tip, err := s.repo.ByID(tipID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		tip.Title = *in.Title
	}
	if in.Content != nil {
		tip.Content = *in.Content
	}
	if in.Category != nil {
		tip.Category = *in.Category
	}
	if in.IsActive != nil {
		tip.IsActive = *in.IsActive
	}
	tip.UpdatedAt = time.Now()

	err = s.repo.Update(tip)
	if err != nil {
		return nil, err
	}

	return tip, nil
}

func (s *HealthTipService) Delete(tipID string) error {
	return s.repo.Delete(tipID)
}
