// Package progress owns every user's per-subject statistics.
//
// MergeAttempt is the only way statistics change. Each user record carries its
// own mutex, so submissions for one user are serialized while different users
// never contend beyond the brief index lookup.
package progress

import (
	"fmt"
	"math"
	"sync"

	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/utils"
)

type userProgress struct {
	mu       sync.Mutex
	subjects models.ProgressMap
	// Totals over every subject; bounding them keeps each counter and any
	// report sum within range.
	answered int
	elapsed  float64
}

type Store struct {
	users map[string]*userProgress
	mutex sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]*userProgress),
	}
}

// record returns the user's record, creating it on first use.
func (s *Store) record(user string) *userProgress {
	s.mutex.RLock()
	up, ok := s.users[user]
	s.mutex.RUnlock()
	if ok {
		return up
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if up, ok = s.users[user]; !ok {
		up = &userProgress{subjects: make(models.ProgressMap)}
		s.users[user] = up
	}
	return up
}

// MergeAttempt adds one attempt summary to the user's statistics for its
// subject and returns a copy of the updated entry. An invalid summary is
// rejected with models.ErrInvalidInput and leaves every statistic untouched.
func (s *Store) MergeAttempt(user string, summary models.AttemptSummary) (models.SubjectStats, error) {
	if err := summary.Validate(); err != nil {
		utils.LogProgress("Rejected attempt for %s: %v", user, err)
		return models.SubjectStats{}, err
	}

	up := s.record(user)
	up.mu.Lock()
	defer up.mu.Unlock()

	if up.answered > math.MaxInt-summary.Attempted {
		err := fmt.Errorf("%w: attempted %d would overflow the answered total", models.ErrInvalidInput, summary.Attempted)
		utils.LogProgress("Rejected attempt for %s: %v", user, err)
		return models.SubjectStats{}, err
	}
	if math.IsInf(up.elapsed+summary.Elapsed, 0) {
		err := fmt.Errorf("%w: elapsed %g would overflow the cumulative time", models.ErrInvalidInput, summary.Elapsed)
		utils.LogProgress("Rejected attempt for %s: %v", user, err)
		return models.SubjectStats{}, err
	}
	up.answered += summary.Attempted
	up.elapsed += summary.Elapsed

	stats := up.subjects[summary.Subject]
	stats.Correct += summary.Correct
	stats.Incorrect += summary.Attempted - summary.Correct
	stats.CumulativeTime += summary.Elapsed
	stats.TimeSamples = append(stats.TimeSamples, summary.Elapsed)
	up.subjects[summary.Subject] = stats

	utils.LogProgress("Merged attempt for %s on %s: +%d/%d in %.2fs (totals %d correct, %d incorrect)",
		user, summary.Subject, summary.Correct, summary.Attempted, summary.Elapsed, stats.Correct, stats.Incorrect)

	return stats.Clone(), nil
}

// Snapshot returns a deep copy of the user's progress map. Users that never
// submitted get an empty map.
func (s *Store) Snapshot(user string) models.ProgressMap {
	s.mutex.RLock()
	up, ok := s.users[user]
	s.mutex.RUnlock()

	out := make(models.ProgressMap)
	if !ok {
		return out
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	for subject, stats := range up.subjects {
		out[subject] = stats.Clone()
	}
	return out
}
