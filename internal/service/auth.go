package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vitaltrack/vitaltrack/internal/model"
	"github.com/vitaltrack/vitaltrack/internal/repository"
	"github.com/vitaltrack/vitaltrack/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("user already exists with this email")
	ErrInvalidRole        = errors.New("role must be patient or provider")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// RegisterInput carries the self-service signup fields.
type RegisterInput struct {
	Email            string
	Password         string
	Role             string
	Name             string
	PhoneNumber      string
	DateOfBirth      *time.Time
	DataUsageConsent bool
}

func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	err = validation.ValidatePassword(in.Password)
	if err != nil {
		return nil, err
	}

	if in.Role != model.RolePatient && in.Role != model.RoleProvider {
		return nil, ErrInvalidRole
	}

	err = validation.ValidateName(in.Name)
	if err != nil {
		return nil, err
	}

	// First word becomes the first name, the rest the last name; a
	// single-word name doubles as both, matching the legacy accounts.
	parts := strings.Fields(strings.TrimSpace(in.Name))
	firstName := parts[0]
	lastName := firstName
	if len(parts) > 1 {
		lastName = strings.Join(parts[1:], " ")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:               uuid.New().String(),
		Email:            email,
		PasswordHash:     string(hash),
		Role:             in.Role,
		FirstName:        firstName,
		LastName:         lastName,
		PhoneNumber:      in.PhoneNumber,
		DateOfBirth:      in.DateOfBirth,
		DataUsageConsent: in.DataUsageConsent,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.DataUsageConsent {
		user.ConsentDate = &now
	}

	err = s.userRepo.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.ByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *AuthService) UserByID(id string) (*model.User, error) {
	return s.userRepo.ByID(id)
}
