package middlewares

//go:generate mockgen -source=session.go -destination=session_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
)

// Tokener reads the signed session id carried by a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (string, error)
}

// SessionReader looks sessions up in the server-side store.
type SessionReader interface {
	Get(ctx context.Context, id string) (*models.Session, error)
}

// SessionMiddleware attaches the caller's session to the request context when
// the request carries a valid token for a live session. It never rejects a
// request; handlers decide whether a session is required.
func SessionMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sessionID, err := tokener.GetSessionID(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("rejected session token", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.Get(ctx, sessionID)
			if err != nil {
				logger.Log.Errorw("failed to load session", "session_id", sessionID, "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if session == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetSessionToContext(ctx, session)))
		})
	}
}

type sessionContextKey struct{}

// SetSessionToContext stores a session in the context
func SetSessionToContext(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// GetSessionFromContext retrieves the session from the context. Returns nil if not present.
func GetSessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(sessionContextKey{}).(*models.Session)
	return session
}
