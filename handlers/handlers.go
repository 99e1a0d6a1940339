package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adamspd/LogicQuiz/auth"
	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/quiz"
	"github.com/adamspd/LogicQuiz/utils"
)

// AccountStore registers and authenticates accounts.
type AccountStore interface {
	CreateUser(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*models.User, error)
}

// Notifier sends the welcome e-mail of a new account.
type Notifier interface {
	QueueWelcomeEmail(user *models.User) error
}

// API wrapper to hold all handlers
type API struct {
	authHandlers     *AuthHandlers
	questionHandlers *QuestionHandlers
	progressHandlers *ProgressHandlers
}

func NewRouter(service *quiz.Service, accounts AccountStore, sessionStore *auth.SessionStore, notifier Notifier) http.Handler {
	api := &API{
		authHandlers:     NewAuthHandlers(service, accounts, sessionStore, notifier),
		questionHandlers: NewQuestionHandlers(service),
		progressHandlers: NewProgressHandlers(service),
	}
	requireAuth := authMiddleware(sessionStore)

	mux := http.NewServeMux()

	// Health check (no auth required)
	mux.HandleFunc("GET /health", healthCheck)

	// Auth endpoints
	mux.HandleFunc("POST /auth/register", api.authHandlers.Register)
	mux.HandleFunc("POST /auth/login", api.authHandlers.Login)
	mux.HandleFunc("POST /auth/logout", api.authHandlers.Logout)
	mux.HandleFunc("GET /auth/me", requireAuth(api.authHandlers.Me))

	// Question routes with auth
	mux.HandleFunc("GET /subjects", requireAuth(api.questionHandlers.ListSubjects))
	mux.HandleFunc("GET /subjects/{subject}/questions", requireAuth(api.questionHandlers.ListQuestions))
	mux.HandleFunc("GET /subjects/{subject}/random", requireAuth(api.questionHandlers.RandomQuestion))

	// Progress routes with auth
	mux.HandleFunc("POST /progress", requireAuth(api.progressHandlers.SubmitAttempt))
	mux.HandleFunc("GET /progress/report", requireAuth(api.progressHandlers.GetReport))
	mux.HandleFunc("GET /progress/subjects", requireAuth(api.progressHandlers.SubjectProgress))

	return loggingMiddleware(corsMiddleware(mux))
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON writes v as JSON with the given status code.
// The body is encoded before the header is sent so an encoding failure becomes a 500.
func respondJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		utils.LogError("Failed to encode response: %v", err)
		status = http.StatusInternalServerError
		body = []byte(`{"success":false,"error":"Internal server error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// respondError maps core error kinds onto HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, models.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, models.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, models.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrEmailTaken):
		status, message = http.StatusConflict, "Email already registered"
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrEmpty):
		status, message = http.StatusNotFound, err.Error()
	default:
		utils.LogError("Unhandled error: %v", err)
	}

	respondJSON(w, status, map[string]any{"success": false, "error": message})
}
