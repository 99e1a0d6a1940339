package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/quiz"
	"github.com/adamspd/LogicQuiz/utils"
)

type ProgressHandlers struct {
	service *quiz.Service
}

func NewProgressHandlers(service *quiz.Service) *ProgressHandlers {
	return &ProgressHandlers{service: service}
}

func (ph *ProgressHandlers) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	var req models.AttemptSummary
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in progress request: %v", err)
		respondError(w, fmt.Errorf("%w: invalid JSON", models.ErrInvalidInput))
		return
	}

	stats, err := ph.service.SubmitAttempt(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.AttemptResponse{
		Accepted: true,
		Subject:  req.Subject,
		Progress: stats,
	})
}

func (ph *ProgressHandlers) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := ph.service.GetReport(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (ph *ProgressHandlers) SubjectProgress(w http.ResponseWriter, r *http.Request) {
	summaries, err := ph.service.SubjectProgress(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"subjects": summaries,
	})
}
