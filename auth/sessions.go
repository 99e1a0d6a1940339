package auth

import (
	"sync"
	"time"

	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/utils"
)

const DefaultSessionTTL = 72 * time.Hour

type SessionStore struct {
	sessions map[string]*models.Session
	mutex    sync.RWMutex
	ttl      time.Duration
	stop     chan struct{}
	once     sync.Once
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	store := &SessionStore{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
		now:      time.Now,
	}

	go store.cleanupExpiredSessions(time.Hour)

	return store
}

func (s *SessionStore) CreateSession(user *models.User) *models.Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	session := &models.Session{
		ID:        utils.GenerateSessionID(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.sessions[session.ID] = session
	out := *session
	return &out
}

// GetSession returns a copy of a live session. Expired sessions are removed.
func (s *SessionStore) GetSession(sessionID string) (*models.Session, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, false
	}
	if s.now().After(session.ExpiresAt) {
		delete(s.sessions, sessionID)
		return nil, false
	}
	out := *session
	return &out, true
}

func (s *SessionStore) DeleteSession(sessionID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.sessions, sessionID)
}

// Close stops the expiry sweep.
func (s *SessionStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *SessionStore) removeExpired(now time.Time) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cleaned := 0
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			cleaned++
		}
	}
	return cleaned
}

func (s *SessionStore) cleanupExpiredSessions(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			if cleaned := s.removeExpired(now); cleaned > 0 {
				utils.LogInfo("Cleaned up %d expired sessions", cleaned)
			}
		}
	}
}
