package service

import (
	"time"

	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
)

type ProfileService struct {
	userRepo repository.UserRepository
	audit    *AuditService
}

func NewProfileService(userRepo repository.UserRepository, audit *AuditService) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		audit:    audit,
	}
}

func (s *ProfileService) Profile(userID string) (*model.User, error) {
	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(userID, model.AuditProfileView, "User", user.ID, nil)

	return user, nil
}

// UpdateProfileInput allow-lists the self-editable fields; anything
// else on the account (email, role, credentials) stays immutable here.
type UpdateProfileInput struct {
	FirstName          *string
	LastName           *string
	PhoneNumber        *string
	DateOfBirth        *time.Time
	Allergies          *string
	CurrentMedications *string
}

func (s *ProfileService) Update(userID string, in UpdateProfileInput) (*model.User, error) {
	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return nil, err
	}

	updated := []string{}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
		updated = append(updated, "firstName")
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
		updated = append(updated, "lastName")
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
		updated = append(updated, "phoneNumber")
	}
	if in.DateOfBirth != nil {
		user.DateOfBirth = in.DateOfBirth
		updated = append(updated, "dateOfBirth")
	}
	if in.Allergies != nil {
		user.Allergies = *in.Allergies
		updated = append(updated, "allergies")
	}
	if in.CurrentMedications != nil {
		user.CurrentMedications = *in.CurrentMedications
		updated = append(updated, "currentMedications")
	}
	user.UpdatedAt = time.Now()

	err = s.userRepo.Update(user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(userID, model.AuditProfileUpdate, "User", user.ID,
		map[string]any{"updatedFields": updated})

	return user, nil
}
