package session

import "errors"

var (
	// ErrInvalidCredentials covers both "user not found" and "wrong
	// password"; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned when no session id is present on the
	// connection or no record exists in the store.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidSessionData is returned when a stored record cannot be
	// parsed.
	ErrInvalidSessionData = errors.New("invalid session data")

	// ErrConflictSelfRemoval rejects removing one's own active session
	// through the remove-other-session path; that has to go through logout.
	ErrConflictSelfRemoval = errors.New("cannot remove current session")

	// Opaque wrappers for unexpected infrastructure failures. Full detail
	// is logged server-side; only these surface to the caller.
	ErrLoginFailed          = errors.New("login failed, please try again later")
	ErrLogoutFailed         = errors.New("logout failed")
	ErrSessionRemovalFailed = errors.New("failed to remove session")
)
