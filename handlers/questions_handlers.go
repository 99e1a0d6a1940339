package handlers

import (
	"net/http"

	"github.com/adamspd/LogicQuiz/quiz"
	"github.com/adamspd/LogicQuiz/utils"
)

type QuestionHandlers struct {
	service *quiz.Service
}

func NewQuestionHandlers(service *quiz.Service) *QuestionHandlers {
	return &QuestionHandlers{service: service}
}

// ListSubjects returns every subject with its question count and the caller's progress.
func (qh *QuestionHandlers) ListSubjects(w http.ResponseWriter, r *http.Request) {
	account, err := qh.service.Account(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"subjects": qh.service.Catalog().SubjectInfos(),
		"progress": account.Progress,
	})
}

func (qh *QuestionHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")

	questions, err := qh.service.Questions(subject)
	if err != nil {
		utils.LogHTTP("Questions for %q unavailable: %v", subject, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"subject":         subject,
		"questions":       questions,
		"total_questions": len(questions),
	})
}

func (qh *QuestionHandlers) RandomQuestion(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")

	question, err := qh.service.DrawQuestion(subject)
	if err != nil {
		utils.LogHTTP("Random draw for %q failed: %v", subject, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, question)
}
