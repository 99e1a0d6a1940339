package auth

import (
	"context"

	"github.com/adamspd/LogicQuiz/models"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession returns a copy of ctx carrying the authenticated session.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext extracts the session placed by WithSession, or nil.
func SessionFromContext(ctx context.Context) *models.Session {
	session, ok := ctx.Value(sessionContextKey).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// ContextIdentity resolves the caller from the session carried by the context.
type ContextIdentity struct{}

func (ContextIdentity) CurrentIdentity(ctx context.Context) (string, bool) {
	session := SessionFromContext(ctx)
	if session == nil || session.Email == "" {
		return "", false
	}
	return session.Email, true
}
