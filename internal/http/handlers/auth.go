package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"donatehub/internal/domain"
	"donatehub/internal/service"
)

// The auth endpoints are a contract with existing clients: a bare
// {"message": ...} body for both success and failure.

type registerRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userLoginDTO `json:"user"`
}

type userLoginDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (a *App) AuthRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := a.Identity.Register(r.Context(), service.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            domain.UserRole(req.Role),
	})
	switch {
	case err == nil:
		a.message(w, http.StatusCreated, "User registered successfully")
	case errors.Is(err, service.ErrMissingFields):
		a.message(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, service.ErrInvalidEmail):
		a.message(w, http.StatusBadRequest, "Please enter a valid email")
	case errors.Is(err, service.ErrPasswordTooShort):
		a.message(w, http.StatusBadRequest, "Password must be at least 6 characters")
	case errors.Is(err, service.ErrPasswordMismatch):
		a.message(w, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, domain.ErrEmailTaken):
		a.message(w, http.StatusBadRequest, "User already exists")
	default:
		a.Logger.Error().Err(err).Msg("register failed")
		a.message(w, http.StatusInternalServerError, "Server error")
	}
}

func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := a.Identity.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		a.json(w, http.StatusOK, loginResponse{
			Token: result.Token,
			User:  userLoginDTO{ID: result.User.ID, Email: result.User.Email},
		})
	case errors.Is(err, service.ErrMissingFields):
		a.message(w, http.StatusBadRequest, "Email and password are required")
	case errors.Is(err, service.ErrInvalidEmail):
		a.message(w, http.StatusBadRequest, "Please enter a valid email")
	case errors.Is(err, domain.ErrInvalidCredentials):
		// One message for unknown email and wrong password alike.
		a.message(w, http.StatusBadRequest, "Invalid credentials")
	default:
		a.Logger.Error().Err(err).Msg("login failed")
		a.message(w, http.StatusInternalServerError, "Server error")
	}
}

func (a *App) message(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"message": msg})
}
