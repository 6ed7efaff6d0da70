package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/vitaltrack/vitaltrack/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type registerRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	Name             string `json:"name"`
	PhoneNumber      string `json:"phoneNumber"`
	DateOfBirth      string `json:"dateOfBirth"`
	DataUsageConsent bool   `json:"dataUsageConsent"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		Role:             req.Role,
		Name:             req.Name,
		PhoneNumber:      req.PhoneNumber,
		DataUsageConsent: req.DataUsageConsent,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid date of birth, expected YYYY-MM-DD")
			return
		}
		in.DateOfBirth = &dob
	}

	user, err := h.authService.Register(in)
	if err != nil {
		// Registration failures all carry user-facing messages.
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, "Registration successful", map[string]any{
		"token": token,
		"user":  user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := decode(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respond(w, http.StatusOK, "Login successful", map[string]any{
		"token": token,
		"user":  user,
	})
}
