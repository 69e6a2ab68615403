package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Kr0n4k/blog-project/internal/logger"
	"github.com/Kr0n4k/blog-project/internal/session"

	"github.com/gin-gonic/gin"
)

// unexported, collision-proof context key
type connContextKeyType struct{}

var connKey = connContextKeyType{}

// ConnFromContext extracts the per-request session carrier.
func ConnFromContext(ctx context.Context) (*session.Conn, bool) {
	conn, ok := ctx.Value(connKey).(*session.Conn)
	return conn, ok
}

// SessionMiddleware resolves the session cookie into a session.Conn and
// attaches it to the request context. It never rejects unauthenticated
// requests; operations that require a user enforce that themselves.
type SessionMiddleware struct {
	store      session.Store
	cookieName string
}

func NewSessionMiddleware(store session.Store, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		store:      store,
		cookieName: cookieName,
	}
}

// load builds the Conn for one request. A store connectivity failure is a
// service outage, not an anonymous request.
func (m *SessionMiddleware) load(w http.ResponseWriter, r *http.Request) (*session.Conn, error) {
	conn := &session.Conn{Writer: w}

	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return conn, nil
	}
	conn.SessionID = cookie.Value

	record, err := m.store.Get(r.Context(), conn.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrInvalidSessionData) {
			logger.Error("unreadable session record on request", map[string]any{
				"sessionId": conn.SessionID,
				"error":     err.Error(),
			})
			return conn, nil
		}
		return nil, err
	}

	conn.Record = record
	return conn, nil
}

// GinSession adapts the middleware to Gin.
func GinSession(m *SessionMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := m.load(c.Writer, c.Request)
		if err != nil {
			logger.Error("session store unavailable", map[string]any{
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "service unavailable",
			})
			return
		}

		ctx := context.WithValue(c.Request.Context(), connKey, conn)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
