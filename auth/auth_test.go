package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamspd/LogicQuiz/models"
)

func testUser() *models.User {
	return &models.User{
		Email:     "ana@example.com",
		Name:      "Ana",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestSessionStore_Lifecycle(t *testing.T) {
	store := NewSessionStore(time.Hour)
	defer store.Close()

	session := store.CreateSession(testUser())
	require.NotEmpty(t, session.ID)
	assert.Equal(t, "ana@example.com", session.Email)

	got, ok := store.GetSession(session.ID)
	require.True(t, ok)
	assert.Equal(t, session, got)

	store.DeleteSession(session.ID)
	_, ok = store.GetSession(session.ID)
	assert.False(t, ok)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(time.Hour)
	defer store.Close()

	clock := time.Now()
	store.now = func() time.Time { return clock }

	expired := store.CreateSession(testUser())
	clock = clock.Add(30 * time.Minute)
	live := store.CreateSession(testUser())
	clock = clock.Add(45 * time.Minute)

	_, ok := store.GetSession(expired.ID)
	assert.False(t, ok)
	_, ok = store.GetSession(live.ID)
	assert.True(t, ok)

	stale := store.CreateSession(testUser())
	clock = clock.Add(2 * time.Hour)
	assert.Equal(t, 2, store.removeExpired(clock), "live and stale have both expired by now")
	_, ok = store.GetSession(stale.ID)
	assert.False(t, ok)
	_, ok = store.GetSession(live.ID)
	assert.False(t, ok)
}

func TestSessionStore_ReturnsCopies(t *testing.T) {
	store := NewSessionStore(time.Hour)
	defer store.Close()

	created := store.CreateSession(testUser())
	created.ExpiresAt = time.Now().Add(-time.Minute)
	created.Email = "mallory@example.com"

	got, ok := store.GetSession(created.ID)
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", got.Email)

	got.ExpiresAt = time.Now().Add(-time.Minute)
	again, ok := store.GetSession(created.ID)
	require.True(t, ok)
	assert.True(t, again.ExpiresAt.After(time.Now()))
}

func TestSessionStore_CloseIsIdempotent(t *testing.T) {
	store := NewSessionStore(0)
	store.Close()
	store.Close()
}

func TestContextIdentity(t *testing.T) {
	var resolver ContextIdentity

	_, ok := resolver.CurrentIdentity(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), &models.Session{Email: "ana@example.com"})
	id, ok := resolver.CurrentIdentity(ctx)
	assert.True(t, ok)
	assert.Equal(t, "ana@example.com", id)

	_, ok = resolver.CurrentIdentity(WithSession(context.Background(), &models.Session{}))
	assert.False(t, ok)
}

func TestEmailService_WelcomeWithoutSMTP(t *testing.T) {
	es := NewEmailService(&models.EmailConfig{BaseURL: "http://localhost:8043/"})
	assert.False(t, es.Configured())

	subject, body := es.BuildWelcomeEmail(testUser())
	assert.Equal(t, "Welcome to Logic Quiz", subject)
	assert.Contains(t, body, "Hello Ana")
	assert.Contains(t, body, "2026-01-02 03:04:05")
	assert.Contains(t, body, "http://localhost:8043/progress/report")

	assert.NoError(t, es.SendEmail("ana@example.com", subject, body))
}
