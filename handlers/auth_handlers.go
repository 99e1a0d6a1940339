package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adamspd/LogicQuiz/auth"
	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/quiz"
	"github.com/adamspd/LogicQuiz/utils"
)

type AuthHandlers struct {
	service      *quiz.Service
	accounts     AccountStore
	sessionStore *auth.SessionStore
	notifier     Notifier
}

func NewAuthHandlers(service *quiz.Service, accounts AccountStore, sessionStore *auth.SessionStore, notifier Notifier) *AuthHandlers {
	return &AuthHandlers{
		service:      service,
		accounts:     accounts,
		sessionStore: sessionStore,
		notifier:     notifier,
	}
}

func (ah *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in register request: %v", err)
		respondError(w, fmt.Errorf("%w: invalid JSON", models.ErrInvalidInput))
		return
	}

	user, err := ah.accounts.CreateUser(r.Context(), req)
	if err != nil {
		utils.LogHTTP("Registration rejected: %v", err)
		respondError(w, err)
		return
	}

	if ah.notifier != nil {
		if err := ah.notifier.QueueWelcomeEmail(user); err != nil {
			utils.LogError("Failed to queue welcome email: %v", err)
		}
	}

	utils.LogHTTP("User registered successfully: %s", user.Email)
	respondJSON(w, http.StatusCreated, map[string]any{
		"user":    user,
		"message": "Registration successful",
	})
}

func (ah *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in login request: %v", err)
		respondError(w, fmt.Errorf("%w: invalid JSON", models.ErrInvalidInput))
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, fmt.Errorf("%w: email and password are required", models.ErrInvalidInput))
		return
	}

	user, err := ah.accounts.AuthenticateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.LogHTTP("Login failed for user: %s", req.Email)
		respondError(w, err)
		return
	}

	session := ah.sessionStore.CreateSession(user)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.LogHTTP("User logged in successfully: %s", user.Email)
	respondJSON(w, http.StatusOK, map[string]any{
		"user":    user,
		"session": session,
		"message": "Login successful",
	})
}

func (ah *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionID := extractSessionFromRequest(r); sessionID != "" {
		ah.sessionStore.DeleteSession(sessionID)
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", MaxAge: -1})

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Logout successful",
	})
}

func (ah *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	account, err := ah.service.Account(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}
