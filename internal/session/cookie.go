package session

import (
	"net/http"
	"time"
)

// CookieOptions defines how session cookies are issued. The SameSite
// policy differs between environments: Lax in development, None in
// production (None requires Secure).
type CookieOptions struct {
	Name     string
	Domain   string
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
}

// CookieOptionsFor derives the cookie policy for the given environment.
func CookieOptionsFor(name, domain string, maxAge time.Duration, production bool) CookieOptions {
	opts := CookieOptions{
		Name:     name,
		MaxAge:   maxAge,
		Secure:   production,
		SameSite: http.SameSiteLaxMode,
	}
	if production {
		opts.Domain = domain
		opts.SameSite = http.SameSiteNoneMode
	}
	return opts
}

// SetCookie issues the session cookie to the client.
func SetCookie(w http.ResponseWriter, sessionID string, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    sessionID,
		Path:     "/",
		Domain:   opts.Domain,
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     "/",
		Domain:   opts.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
