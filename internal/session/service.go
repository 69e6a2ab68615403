package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/Kr0n4k/blog-project/internal/logger"
	"github.com/Kr0n4k/blog-project/internal/user"
)

// Conn carries the per-request session state handed in by the transport
// layer: the session id read from the cookie, the loaded record (nil when
// none exists) and the response writer used to issue or clear cookies.
type Conn struct {
	SessionID string
	Record    *Session
	Writer    http.ResponseWriter
}

// UserFinder is the slice of the persistence layer the service needs.
type UserFinder interface {
	FindByLoginOrEmail(ctx context.Context, login string) (*user.User, error)
}

type Service struct {
	users  UserFinder
	store  Store
	cookie CookieOptions
}

func NewService(users UserFinder, store Store, cookie CookieOptions) *Service {
	return &Service{
		users:  users,
		store:  store,
		cookie: cookie,
	}
}

type LoginInput struct {
	Login    string
	Password string
}

type LoginResult struct {
	Success bool
	Message string
	User    user.PublicUser
	Session Session
}

// Login verifies credentials, persists a fresh session record and only
// then attaches the session cookie. "User not found" and "wrong password"
// are indistinguishable to the caller; everything else unexpected is
// wrapped into ErrLoginFailed so internals never leak.
func (s *Service) Login(ctx context.Context, conn *Conn, input LoginInput) (*LoginResult, error) {
	u, err := s.users.FindByLoginOrEmail(ctx, input.Login)
	if err != nil {
		logger.Error("login: user lookup failed", map[string]any{
			"login": input.Login,
			"error": err.Error(),
		})
		return nil, ErrLoginFailed
	}

	if u == nil {
		logger.Warn("login attempt failed: user not found", map[string]any{
			"login": input.Login,
		})
		return nil, ErrInvalidCredentials
	}

	if err := user.VerifyPassword(u.PasswordHash, input.Password); err != nil {
		logger.Warn("invalid password attempt", map[string]any{
			"userId": u.ID,
		})
		return nil, ErrInvalidCredentials
	}

	sessionID, err := GenerateID()
	if err != nil {
		logger.Error("login: failed to generate session id", map[string]any{
			"error": err.Error(),
		})
		return nil, ErrLoginFailed
	}

	sess := Session{
		ID:        sessionID,
		UserID:    u.ID,
		CreatedAt: time.Now(),
	}

	// Save must confirm before the cookie is issued; a cookie pointing at
	// an unsaved record is useless.
	if err := s.store.Save(ctx, sess); err != nil {
		logger.Error("login: failed to save session", map[string]any{
			"userId": u.ID,
			"error":  err.Error(),
		})
		return nil, ErrLoginFailed
	}

	if conn.Writer != nil {
		SetCookie(conn.Writer, sessionID, s.cookie)
	}
	conn.SessionID = sessionID
	conn.Record = &sess

	logger.Info("successful login", map[string]any{"userId": u.ID})

	return &LoginResult{
		Success: true,
		Message: "Login successful",
		User:    u.Public(),
		Session: sess,
	}, nil
}

// Logout destroys the session record, then clears the cookie. Once the
// record is gone server-side the operation has succeeded; a missing
// response writer is logged, never surfaced.
func (s *Service) Logout(ctx context.Context, conn *Conn) error {
	if conn == nil || conn.SessionID == "" {
		return ErrSessionNotFound
	}

	if err := s.store.Delete(ctx, conn.SessionID); err != nil {
		logger.Error("logout: failed to destroy session", map[string]any{
			"sessionId": conn.SessionID,
			"error":     err.Error(),
		})
		return ErrLogoutFailed
	}

	if conn.Writer != nil {
		ClearCookie(conn.Writer, s.cookie)
	} else {
		logger.Warn("logout: response writer not available, skipping cookie clear", map[string]any{
			"sessionId": conn.SessionID,
		})
	}

	conn.Record = nil
	return nil
}

// FindCurrent returns the caller's own session record from the store.
func (s *Service) FindCurrent(ctx context.Context, conn *Conn) (*Session, error) {
	if conn == nil || conn.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	sess, err := s.store.Get(ctx, conn.SessionID)
	if err != nil {
		if errors.Is(err, ErrInvalidSessionData) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	return sess, nil
}

// FindByUser scans the store and returns every session belonging to the
// authenticated caller, most recent first. Corrupt records are logged and
// skipped, never fatal to the scan.
func (s *Service) FindByUser(ctx context.Context, conn *Conn) ([]Session, error) {
	if conn == nil || !conn.Record.Authenticated() {
		return nil, ErrSessionNotFound
	}
	userID := conn.Record.UserID

	ids, err := s.store.SessionIDs(ctx)
	if err != nil {
		logger.Error("failed to enumerate sessions", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("failed to retrieve user sessions: %w", err)
	}

	var sessions []Session
	for _, id := range ids {
		sess, err := s.store.Get(ctx, id)
		if err != nil {
			logger.Error("skipping unreadable session record", map[string]any{
				"sessionId": id,
				"error":     err.Error(),
			})
			continue
		}
		if sess == nil || sess.UserID != userID {
			continue
		}
		sessions = append(sessions, *sess)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	return sessions, nil
}

// Remove terminates a *different* session of the authenticated caller.
// Removing the current session must go through Logout instead; an
// unauthenticated caller gets ErrSessionNotFound and touches nothing.
func (s *Service) Remove(ctx context.Context, conn *Conn, targetSessionID string) error {
	if conn == nil || !conn.Record.Authenticated() {
		return ErrSessionNotFound
	}
	if conn.SessionID == targetSessionID {
		return ErrConflictSelfRemoval
	}

	if err := s.store.Delete(ctx, targetSessionID); err != nil {
		logger.Error("failed to remove session", map[string]any{
			"sessionId": targetSessionID,
			"error":     err.Error(),
		})
		return ErrSessionRemovalFailed
	}

	return nil
}

// ClearSession clears the cookie without touching the store. Best-effort,
// never returns an error.
func (s *Service) ClearSession(conn *Conn) bool {
	if conn == nil || conn.Writer == nil {
		logger.Warn("clear session: response writer not available", nil)
		return false
	}

	ClearCookie(conn.Writer, s.cookie)
	return true
}

// CookieOptions exposes the configured cookie policy, for the transport
// layer's middleware.
func (s *Service) CookieOptions() CookieOptions {
	return s.cookie
}
