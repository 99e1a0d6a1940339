// Package quiz exposes the core operations to the boundary layer. Every
// operation on behalf of a user resolves the caller through the injected
// IdentityResolver first.
package quiz

import (
	"context"
	"fmt"
	"sort"

	"github.com/adamspd/LogicQuiz/catalog"
	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/progress"
	"github.com/adamspd/LogicQuiz/report"
	"github.com/adamspd/LogicQuiz/utils"
)

// IdentityResolver supplies the identity of the calling user.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context) (string, bool)
}

// UserDirectory looks up registered accounts. Unknown users yield models.ErrNotFound.
type UserDirectory interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type Service struct {
	catalog  *catalog.Catalog
	progress *progress.Store
	users    UserDirectory
	identity IdentityResolver
}

func NewService(c *catalog.Catalog, p *progress.Store, users UserDirectory, identity IdentityResolver) *Service {
	return &Service{
		catalog:  c,
		progress: p,
		users:    users,
		identity: identity,
	}
}

// Catalog exposes the read-only question catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Service) caller(ctx context.Context) (*models.User, error) {
	email, ok := s.identity.CurrentIdentity(ctx)
	if !ok {
		return nil, models.ErrUnauthorized
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SubmitAttempt merges one attempt summary into the caller's statistics.
// Subjects must exist in the catalog; "all" is tracked under its own key.
func (s *Service) SubmitAttempt(ctx context.Context, summary models.AttemptSummary) (models.SubjectStats, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return models.SubjectStats{}, err
	}
	if err := summary.Validate(); err != nil {
		return models.SubjectStats{}, err
	}
	if !s.catalog.Has(summary.Subject) {
		return models.SubjectStats{}, fmt.Errorf("subject %q: %w", summary.Subject, models.ErrNotFound)
	}
	return s.progress.MergeAttempt(user.Email, summary)
}

// GetReport builds the caller's performance report.
func (s *Service) GetReport(ctx context.Context) (models.PerformanceReport, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return models.PerformanceReport{}, err
	}
	r := report.Build(s.progress.Snapshot(user.Email), s.catalog.TotalQuestions())
	utils.LogProgress("Report for %s: %d%% overall, tier %q", user.Email, r.AccuracyPercent, r.Feedback)
	return r, nil
}

// DrawQuestion returns one uniformly random question of subject.
func (s *Service) DrawQuestion(subject string) (models.Question, error) {
	return s.catalog.DrawRandom(subject)
}

// Questions returns every question of subject with its positional ID.
func (s *Service) Questions(subject string) ([]models.Question, error) {
	return s.catalog.QuestionsIn(subject)
}

// SubjectProgress lists the caller's raw per-subject totals, sorted by subject.
func (s *Service) SubjectProgress(ctx context.Context) ([]models.SubjectSummary, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	snap := s.progress.Snapshot(user.Email)
	out := make([]models.SubjectSummary, 0, len(snap))
	for subject, stats := range snap {
		out = append(out, models.SubjectSummary{
			Subject:        subject,
			Correct:        stats.Correct,
			Incorrect:      stats.Incorrect,
			CumulativeTime: stats.CumulativeTime,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out, nil
}

// Account returns the caller's profile and progress snapshot.
func (s *Service) Account(ctx context.Context) (models.Account, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return models.Account{}, err
	}
	return models.Account{
		User:         user,
		RegisteredAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
		Progress:     s.progress.Snapshot(user.Email),
	}, nil
}
