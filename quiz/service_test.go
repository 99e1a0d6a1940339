package quiz

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamspd/LogicQuiz/catalog"
	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/progress"
)

type ctxKey struct{}

// ctxIdentity reads the caller straight from the context.
type ctxIdentity struct{}

func (ctxIdentity) CurrentIdentity(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// mockDirectory implements UserDirectory for testing.
type mockDirectory map[string]*models.User

func (m mockDirectory) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	return u, nil
}

const testCatalog = `
subjects:
  - id: tabelas
    questions:
      - prompt: "p ∧ q with p=V, q=F?"
        options: ["V", "F"]
        correct: 1
  - id: proposicoes
    questions:
      - prompt: "Which is a proposition?"
        options: ["Close the door.", "The sky is blue."]
        correct: 1
      - prompt: "Is 'x > 2' a proposition?"
        options: ["yes", "no"]
        correct: 1
  - id: vazio
    questions: []
`

func newService(t *testing.T) *Service {
	t.Helper()
	c, err := catalog.Load(strings.NewReader(testCatalog))
	require.NoError(t, err)
	users := mockDirectory{
		"ana@example.com": {Email: "ana@example.com", Name: "Ana", CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		"bob@example.com": {Email: "bob@example.com", Name: "Bob"},
	}
	return NewService(c, progress.NewStore(), users, ctxIdentity{})
}

func as(email string) context.Context {
	return context.WithValue(context.Background(), ctxKey{}, email)
}

func TestSubmitAttemptThenReport(t *testing.T) {
	s := newService(t)
	ctx := as("ana@example.com")

	_, err := s.SubmitAttempt(ctx, models.AttemptSummary{Subject: "tabelas", Attempted: 10, Correct: 8, Elapsed: 20})
	require.NoError(t, err)
	stats, err := s.SubmitAttempt(ctx, models.AttemptSummary{Subject: "tabelas", Attempted: 5, Correct: 5, Elapsed: 5})
	require.NoError(t, err)
	assert.Equal(t, models.SubjectStats{Correct: 13, Incorrect: 2, CumulativeTime: 25, TimeSamples: []float64{20, 5}}, stats)

	r, err := s.GetReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 87, r.AccuracyPercent)
	assert.Equal(t, 3, r.TotalQuestions)
	assert.Equal(t, "12.50s", r.AverageTimeDisplay)
	assert.Equal(t, models.TierExcellent, r.Feedback)

	other, err := s.GetReport(as("bob@example.com"))
	require.NoError(t, err)
	assert.Zero(t, other.TotalCorrect, "users do not share progress")
	assert.Nil(t, other.AverageTime)
	assert.Equal(t, models.TierNeedsPractice, other.Feedback)
}

func TestUnauthenticatedCallsFail(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.SubmitAttempt(ctx, models.AttemptSummary{Subject: "tabelas", Attempted: 1, Correct: 1})
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = s.GetReport(ctx)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = s.SubjectProgress(ctx)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = s.Account(ctx)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestUnknownUserIsNotFound(t *testing.T) {
	s := newService(t)

	_, err := s.GetReport(as("ghost@example.com"))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSubmitAttempt_Validation(t *testing.T) {
	s := newService(t)
	ctx := as("ana@example.com")

	_, err := s.SubmitAttempt(ctx, models.AttemptSummary{Subject: "tabelas", Attempted: 5, Correct: 7, Elapsed: 1})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = s.SubmitAttempt(ctx, models.AttemptSummary{Subject: "geometria", Attempted: 1, Correct: 1, Elapsed: 1})
	assert.ErrorIs(t, err, models.ErrNotFound)

	summaries, err := s.SubjectProgress(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestSubmitAttempt_AllIsItsOwnProgressKey(t *testing.T) {
	s := newService(t)
	ctx := as("ana@example.com")

	_, err := s.SubmitAttempt(ctx, models.AttemptSummary{Subject: models.AllSubjects, Attempted: 3, Correct: 2, Elapsed: 9})
	require.NoError(t, err)

	summaries, err := s.SubjectProgress(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, models.AllSubjects, summaries[0].Subject)
	assert.Equal(t, 2, summaries[0].Correct)
	assert.Equal(t, 1, summaries[0].Incorrect)
}

func TestSubjectProgress_Sorted(t *testing.T) {
	s := newService(t)
	ctx := as("ana@example.com")

	for _, subject := range []string{"tabelas", "proposicoes"} {
		_, err := s.SubmitAttempt(ctx, models.AttemptSummary{Subject: subject, Attempted: 2, Correct: 1, Elapsed: 4})
		require.NoError(t, err)
	}

	summaries, err := s.SubjectProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.SubjectSummary{
		{Subject: "proposicoes", Correct: 1, Incorrect: 1, CumulativeTime: 4},
		{Subject: "tabelas", Correct: 1, Incorrect: 1, CumulativeTime: 4},
	}, summaries)
}

func TestAccount(t *testing.T) {
	s := newService(t)
	ctx := as("ana@example.com")

	_, err := s.SubmitAttempt(ctx, models.AttemptSummary{Subject: "tabelas", Attempted: 1, Correct: 1, Elapsed: 2})
	require.NoError(t, err)

	acc, err := s.Account(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", acc.User.Name)
	assert.Equal(t, "2026-03-01 10:00:00", acc.RegisteredAt)
	assert.Equal(t, 1, acc.Progress["tabelas"].Correct)
}

func TestDrawQuestion(t *testing.T) {
	s := newService(t)

	q, err := s.DrawQuestion("tabelas")
	require.NoError(t, err)
	assert.Equal(t, "p ∧ q with p=V, q=F?", q.Prompt)

	_, err = s.DrawQuestion("geometria")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = s.DrawQuestion("vazio")
	assert.ErrorIs(t, err, models.ErrEmpty)

	qs, err := s.Questions("proposicoes")
	require.NoError(t, err)
	assert.Len(t, qs, 2)
}
